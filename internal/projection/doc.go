// Package projection turns persisted entity records into the flat,
// camel-cased JSON view objects the client reads.
//
// Every entity kind runs the same three stages:
//
//  1. normalize: each FieldSpec of the kind's catalog is resolved against the
//     record, following relation paths such as family.project.guid
//  2. transform: snake_case keys become camelCase and the guid is lifted out
//     so it can be emitted as <kind>Guid
//  3. augment: a per-kind function adds derived fields (projectGuid fallbacks,
//     media URLs, parsed phenotips documents, analysed-by summaries)
//
// # Records
//
// A Record is anything that can read a named field. MapRecord adapts plain
// maps, Object adapts structs through their `attr` tags. Relations are
// followed through nested maps, structs, pointers or values that already
// implement Record.
//
// # Soft failures
//
// A relation that cannot be followed, a phenotips document that does not
// parse or an analysed-by lookup that fails never aborts a projection. The
// affected field is null and the failure is logged.
//
// # Catalogs
//
// Field catalogs are YAML:
//
//	version: "1"
//	kinds:
//	  family:
//	    public:
//	      - guid
//	      - analysis_notes
//	      - {path: project.name, key: project_name}
//	    privileged:
//	      - internal_case_review_notes
//
// A Catalog is immutable once built and can be shared by any number of
// goroutines.
package projection
