// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "io"

// FileUpload carries an uploaded file through the use case layer without
// binding it to any HTTP framework type.
type FileUpload struct {
	Filename string
	Content  io.Reader
}
