// Package envfilter selects migration scripts for a deployment environment
// using directory-naming conventions only.
//
// A directory whose name starts with scriptenv.MarkerPrefix ("_") marks its
// contents as environment-specific, unless the name is one of the reserved
// pipeline-stage names (INIT, PRE, DRAFT, POST, ERASE, DROP, TRANSACTION).
// For a request of codes ["dev", "qa"] the directories "_dev", "_qa" and
// "_dev_qa" are accepted; "_qa_dev" is not, because compound names must follow
// request order.
//
// Only the marker nearest to the file decides its fate:
//
//	/migrations/v1.0/_dev/a.sql        kept for dev
//	/migrations/v1.0/_test/b.sql       dropped for dev
//	/migrations/v1.0/c.sql             always kept
//	/migrations/v1.0/_transaction/_dev/d.sql   kept for dev
//
// Every function here is pure. Paths are parsed, never opened, so callers
// supply the listing (see the filesystem package) and get a new slice back.
package envfilter
