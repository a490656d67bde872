// Package models defines the core domain models for FurniTrack.
//
// # Models
//
//   - Employee: an assembler on the payroll
//   - Location: a job site where furniture is assembled
//   - AssemblyRecord: one job entry with its priced line items
//   - AssemblyItem: a single furniture position inside a record
//   - Settings: the application-wide singleton configuration
//
// # Design Principles
//
//  1. **External identity**: ids are UUID strings assigned by the caller
//     before creation, matching the browser client's behavior.
//  2. **No cascades**: deleting an employee or location leaves dangling
//     id references in assembly records; readers must tolerate them.
//  3. **Snapshot pricing**: item prices are computed once at submission
//     time with the deduction percentage in effect at that moment and
//     never recomputed afterwards.
//
// JSON tags mirror the wire format the browser client speaks, so the
// structs marshal directly into API responses.
package models
