// Package report renders an analysis result for humans (formatted text) or
// machines (indented JSON). Rendering is strictly read-only over the result;
// all scoring and ranking happens upstream in the pipeline.
package report
