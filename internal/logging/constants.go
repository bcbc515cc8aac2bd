package logging

// Field names shared by every component so log output stays greppable.
const (
	FieldOperation     = "operation"
	FieldTransactionID = "transaction_id"
	FieldAmount        = "amount"
	FieldCategory      = "category"
	FieldFilter        = "filter"
	FieldFilterKind    = "filter_kind"
	FieldParameter     = "parameter"
	FieldReason        = "reason"
	FieldCount         = "count"
	FieldTotal         = "total"
	FieldRow           = "row"
	FieldFormat        = "format"
	FieldOutputFile    = "output_file"
	FieldError         = "error"
)
