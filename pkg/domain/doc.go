/*
Package domain contains the core model for the Docket engine.

It defines the fundamental entities of the processing pipeline: Projects
(mutable records), Actions (uniform state transitions, including the
budget-gated ConditionalApproval decorator), and the Registry that fans
out bulk processing. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Project: The record being transformed; owns its bound action sequence.
  - Action: A polymorphic operation that mutates exactly one project.
  - Registry: An ordered owner of projects providing bulk processing.
  - LifecycleHooks: Observability callbacks fired by the engine facade.
*/
package domain
