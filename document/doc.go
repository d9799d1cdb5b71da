// Package document defines the OpenAPI document object model produced by
// the generator package.
//
// Two target specification versions are supported: Swagger 2.0
// (OAS2Document) and OpenAPI 3.x (OAS3Document). Both document shapes
// carry yaml and json struct tags so an assembled document renders
// identically through either text encoding and can be decoded back into
// an equivalent value.
//
// The model is deliberately lean: it covers the structural surface the
// generator emits. Specification extensions and reference resolution
// against external documents are out of scope.
package document
