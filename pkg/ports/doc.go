/*
Package ports defines the driven-port interfaces that connect the Docket
core to infrastructure adapters, along with exported contract-test suites
that every adapter implementation must pass.
*/
package ports
