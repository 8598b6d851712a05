// Package schemas embeds the JSON Schemas of the documents exchanged by resume-builder.
package schemas

import _ "embed"

// ResumeDocumentFile is the schema file name of the resume document
const ResumeDocumentFile = "resume_document.schema.json"

//go:embed resume_document.schema.json
var resumeDocument []byte

// ResumeDocument returns the resume document schema
func ResumeDocument() []byte {
	return resumeDocument
}
