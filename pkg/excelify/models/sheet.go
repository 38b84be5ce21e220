package models

// SheetAssignment binds a namespace object to the sheet it is written to.
type SheetAssignment struct {
	// SheetName is the final (possibly truncated) sheet name.
	SheetName string
	// ObjectName is the namespace name the frame was resolved from.
	ObjectName string
	// Frame is the value written to the sheet.
	Frame Frame
}
