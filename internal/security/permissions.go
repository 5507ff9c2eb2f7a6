package security

import "strings"

// Permission represents PDF document permissions (the /P entry).
//
// These flags control what operations are allowed on an encrypted PDF.
// Multiple permissions can be combined with the OR operator (|).
//
// Example:
//
//	perms := PermissionPrint | PermissionCopy | PermissionModify
type Permission int32

const (
	// PermissionPrint allows printing the document (bit 3).
	PermissionPrint Permission = 1 << 2

	// PermissionModify allows modifying the document (bit 4).
	PermissionModify Permission = 1 << 3

	// PermissionCopy allows copying text and graphics (bit 5).
	PermissionCopy Permission = 1 << 4

	// PermissionAnnotate allows adding or modifying annotations (bit 6).
	PermissionAnnotate Permission = 1 << 5

	// PermissionFillForms allows filling form fields (bit 9).
	PermissionFillForms Permission = 1 << 8

	// PermissionExtract allows extracting text for accessibility (bit 10).
	PermissionExtract Permission = 1 << 9

	// PermissionAssemble allows assembling the document (bit 11).
	PermissionAssemble Permission = 1 << 10

	// PermissionPrintHighQuality allows high-quality printing (bit 12).
	PermissionPrintHighQuality Permission = 1 << 11

	// PermissionAll grants all permissions.
	PermissionAll Permission = PermissionPrint |
		PermissionModify |
		PermissionCopy |
		PermissionAnnotate |
		PermissionFillForms |
		PermissionExtract |
		PermissionAssemble |
		PermissionPrintHighQuality

	// PermissionNone grants no permissions.
	PermissionNone Permission = 0
)

// Has checks if a specific permission is granted.
func (p Permission) Has(perm Permission) bool {
	return p&perm == perm
}

// Add adds a permission to the current permissions.
func (p Permission) Add(perm Permission) Permission {
	return p | perm
}

// Remove removes a permission from the current permissions.
func (p Permission) Remove(perm Permission) Permission {
	return p &^ perm
}

// normalize produces the /P value actually written to the encryption
// dictionary, per SPEC_FULL.md §4.8 step 1 / spec.md §4.8:
//
//	P |= strong ? 0xFFFFF0C0 : 0xFFFFFFC0
//	P &= 0xFFFFFFFC
//
// strong distinguishes R3/R4 (0xFFFFF0C0 sets bits 7-8 and 13-32, leaving
// bits 3-6 and 9-12 as requested) from R2 (0xFFFFFFC0 sets every bit from
// 7 up, leaving only bits 3-6 as requested); both clear bits 1-2. The
// teacher's Permission.ToPDFValue always applied the R≥3 mask regardless
// of revision; that bug is corrected here.
func (p Permission) normalize(strong bool) int32 {
	v := uint32(p)
	if strong {
		v |= 0xFFFFF0C0
	} else {
		v |= 0xFFFFFFC0
	}
	v &= 0xFFFFFFFC
	return int32(v)
}

// String returns a human-readable representation of the enabled
// permissions.
func (p Permission) String() string {
	if p == PermissionNone {
		return "None"
	}
	if p == PermissionAll {
		return "All"
	}

	checks := []struct {
		flag Permission
		name string
	}{
		{PermissionPrint, "Print"},
		{PermissionModify, "Modify"},
		{PermissionCopy, "Copy"},
		{PermissionAnnotate, "Annotate"},
		{PermissionFillForms, "FillForms"},
		{PermissionExtract, "Extract"},
		{PermissionAssemble, "Assemble"},
		{PermissionPrintHighQuality, "PrintHighQuality"},
	}

	var names []string
	for _, c := range checks {
		if p.Has(c.flag) {
			names = append(names, c.name)
		}
	}
	return strings.Join(names, " | ")
}
