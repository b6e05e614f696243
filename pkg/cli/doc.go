// Package cli implements the validate command line tool.
//
//	validate --rules rules.yaml --input record.json --locale de --format yaml
//
// The rule file is compiled with package ruleset, the record is read as a
// single JSON object and the resulting messages are written to stdout.
// Settings fall back to VALIDATE_* environment variables, which may also be
// provided through a .env file.
package cli
