// Package writers turns a finished run report into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (TSV, legacy text, JSON, JSONL, YAML).
//   - The core stays domain-only; the pipeline stays orchestration-only.
//   - JSON/JSONL/YAML go through pkg/api (v1) for a stable wire format.
package writers
