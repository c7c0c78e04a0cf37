// Package normalize turns raw backend bodies into canonical records.
//
// The admin backend is inconsistent in three ways and this package absorbs all
// of them so the resource clients stay thin:
//
//   - Envelopes: some endpoints answer {success, data}, others send the payload
//     bare. Unwrap inspects the top level only and returns the logical payload.
//   - Field names: wire records use snake_case backend vocabulary. A FieldTable
//     declares the wire to canonical correspondence for one resource.
//   - Paging: metadata arrives under several spellings, or not at all. Project
//     reduces it to a models.PagingDescriptor.
//
// Everything here is pure. No function performs I/O or keeps state.
package normalize
