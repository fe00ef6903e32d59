package domain

import "slices"

// compareOrder orders by rank, breaking ties by id so colliding orders
// still sort deterministically.
func compareOrder(aOrder, aID, bOrder, bID int) int {
	if aOrder != bOrder {
		if aOrder < bOrder {
			return -1
		}
		return 1
	}
	if aID < bID {
		return -1
	}
	if aID > bID {
		return 1
	}
	return 0
}

// SortNotes sorts notes by order, then id
func SortNotes(notes []Note) {
	slices.SortStableFunc(notes, func(a, b Note) int {
		return compareOrder(a.Order, a.ID, b.Order, b.ID)
	})
}

// SortFolders sorts folders by order, then id
func SortFolders(folders []Folder) {
	slices.SortStableFunc(folders, func(a, b Folder) int {
		return compareOrder(a.Order, a.ID, b.Order, b.ID)
	})
}

// Siblings returns the notes of one sibling group, sorted
func Siblings(notes []Note, folderID *int) []Note {
	var group []Note
	for _, n := range notes {
		if n.InGroup(folderID) {
			group = append(group, n)
		}
	}
	SortNotes(group)
	return group
}

// NextNoteOrder returns 1 + the highest order in the group, or 0 when empty
func NextNoteOrder(notes []Note, folderID *int) int {
	next := 0
	for _, n := range notes {
		if n.InGroup(folderID) && n.Order+1 > next {
			next = n.Order + 1
		}
	}
	return next
}

// NextFolderOrder returns 1 + the highest folder order, or 0 when empty
func NextFolderOrder(folders []Folder) int {
	next := 0
	for _, f := range folders {
		if f.Order+1 > next {
			next = f.Order + 1
		}
	}
	return next
}
