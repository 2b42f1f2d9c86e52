// Package kernel provides core domain primitives for the fulfillment service.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - SessionKey: A value object identifying one conversation with the ordering agent
//   - ExtractSessionKey / ExtractContextName: total parsers for the NLU platform's
//     context resource paths
//
// These primitives are immutable and safe for concurrent use.
package kernel
