package models

// PagingDescriptor is the normalized paging metadata of a list response.
type PagingDescriptor struct {
	Total       int `json:"total" yaml:"total"`
	CurrentPage int `json:"currentPage" yaml:"currentPage"`
	TotalPages  int `json:"totalPages" yaml:"totalPages"`
	PerPage     int `json:"perPage" yaml:"perPage"`
}

// EmptyPaging describes a listing with no records.
func EmptyPaging() PagingDescriptor {
	return PagingDescriptor{Total: 0, CurrentPage: 1, TotalPages: 0, PerPage: 1}
}

// RecordError marks a wire record that could not be mapped. Index is the
// position of the record in the wire batch.
type RecordError struct {
	Index int    `json:"index" yaml:"index"`
	Err   string `json:"error" yaml:"error"`
}

// ListResult is one page of canonical records. Records keep the wire order;
// malformed wire records are reported in Rejected instead of dropping the page.
type ListResult[T any] struct {
	Records  []T              `json:"records" yaml:"records"`
	Rejected []RecordError    `json:"rejected,omitempty" yaml:"rejected,omitempty"`
	Paging   PagingDescriptor `json:"paging" yaml:"paging"`
}

// EmptyList is returned when the backend answers a listing without a payload.
func EmptyList[T any]() ListResult[T] {
	return ListResult[T]{Records: []T{}, Paging: EmptyPaging()}
}
