package commands

import (
	"fmt"
	"strconv"
	"strings"

	"noted/internal/application"
	"noted/internal/domain"
	"noted/internal/ports"
)

// parseNoteID accepts "N" or "note-N"
func parseNoteID(field, value string) (int, error) {
	ref, err := application.ValidateRef(field, value, domain.KindNote)
	if err != nil {
		return 0, err
	}
	return ref.ID, nil
}

// parseFolderID accepts "folder-N" or a bare "N"
func parseFolderID(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if id, err := strconv.Atoi(value); err == nil && id > 0 {
		return id, nil
	}
	ref, err := application.ValidateRef(field, value, domain.KindFolder)
	if err != nil {
		return 0, err
	}
	return ref.ID, nil
}

// parseFolderTarget parses a destination group: "", "root" or "/" mean the
// root group, anything else must name a folder.
func parseFolderTarget(field, value string) (*int, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "root", "/":
		return nil, nil
	}
	id, err := parseFolderID(field, value)
	if err != nil {
		return nil, err
	}
	return domain.FolderRef(id), nil
}

// describeGroup names a sibling group for result messages
func describeGroup(nb ports.Notebook, folderID *int) string {
	if folderID == nil {
		return "root"
	}
	if f, err := nb.Folder(*folderID); err == nil {
		return fmt.Sprintf("%s (%s)", f.Name, domain.FolderItemRef(f.ID))
	}
	return domain.FormatFolderID(folderID)
}
