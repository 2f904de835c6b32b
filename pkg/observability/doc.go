/*
Package observability provides Prometheus instrumentation for the Docket
engine, exposed as lifecycle hooks so the domain core stays free of
metrics concerns.
*/
package observability
