package dataset

// Error represents an error on the structure or contents of a dataset
type Error string

/*
ErrMalformedDataset is the error returned when a dataset cannot be built
because a row does not have as many columns as the header, or because the
header does not provide at least an identifier and a label column.
*/
const ErrMalformedDataset = Error("malformed dataset")

/*
ErrEmptyDataset is the error returned when a calculation that needs at least
one data row, like the entropy or a majority label, is requested on a dataset
without them.
*/
const ErrEmptyDataset = Error("dataset has no data rows")

func (e Error) Error() string {
	return string(e)
}

/*
ErrMissingColumn is the error returned when a value is requested for a
column that the header does not define.
*/
const ErrMissingColumn = Error("no column named")
