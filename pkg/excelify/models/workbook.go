package models

// ResolvedExport is the complete plan for one workbook file.
type ResolvedExport struct {
	// TargetPath is the workbook path, always ending in ".xlsx".
	TargetPath string
	// Sheets lists sheet assignments in write order.
	Sheets []SheetAssignment
}

// SheetNames returns the sheet names in write order.
func (r ResolvedExport) SheetNames() []string {
	names := make([]string, 0, len(r.Sheets))
	for _, s := range r.Sheets {
		names = append(names, s.SheetName)
	}
	return names
}
