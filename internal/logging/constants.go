package logging

// Standardized field names for structured logging.
const (
	FieldComponent     = "component"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldOperation     = "operation"
	FieldUndoKind      = "undo_kind"
	FieldUndoDepth     = "undo_depth"
	FieldError         = "error"
	FieldCount         = "count"
	FieldFormat        = "format"
	FieldDelimiter     = "delimiter"
	FieldInputFile     = "input_file"
	FieldOutputFile    = "output_file"
	FieldLine          = "line"
)

// Operation names used with FieldOperation
const (
	OpAdd    = "add"
	OpDelete = "delete"
	OpUndo   = "undo"
	OpImport = "import"
	OpExport = "export"
)
