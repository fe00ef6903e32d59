package application

import (
	"slices"

	"noted/internal/domain"
)

// NotePlacement assigns a note its folder and order
type NotePlacement struct {
	ID       int
	FolderID *int
	Order    int
}

// FolderPlacement assigns a folder its order
type FolderPlacement struct {
	ID    int
	Order int
}

// Plan is the proposed result of a drop. It only lists entities whose
// placement changes.
type Plan struct {
	Notes   []NotePlacement
	Folders []FolderPlacement
}

// Empty reports whether the plan changes nothing
func (p Plan) Empty() bool {
	return len(p.Notes) == 0 && len(p.Folders) == 0
}

// PlanDrop computes the placement that results from dropping source onto
// target. It never mutates its inputs. The boolean is false when the drop
// is a no-op: same item, unknown ids, or a folder dropped onto a note.
func PlanDrop(source, target domain.Ref, notes []domain.Note, folders []domain.Folder) (Plan, bool) {
	if source == target {
		return Plan{}, false
	}

	switch {
	case source.Kind == domain.KindFolder && target.Kind == domain.KindFolder:
		return planFolderOntoFolder(source.ID, target.ID, folders)
	case source.Kind == domain.KindNote && target.Kind == domain.KindNote:
		return planNoteOntoNote(source.ID, target.ID, notes)
	case source.Kind == domain.KindNote && target.Kind == domain.KindFolder:
		return planNoteOntoFolder(source.ID, target.ID, notes, folders)
	default:
		return Plan{}, false
	}
}

func planFolderOntoFolder(sourceID, targetID int, folders []domain.Folder) (Plan, bool) {
	sorted := slices.Clone(folders)
	domain.SortFolders(sorted)

	from := slices.IndexFunc(sorted, func(f domain.Folder) bool { return f.ID == sourceID })
	to := slices.IndexFunc(sorted, func(f domain.Folder) bool { return f.ID == targetID })
	if from < 0 || to < 0 {
		return Plan{}, false
	}

	moved := arrayMove(sorted, from, to)
	plan := Plan{Folders: make([]FolderPlacement, len(moved))}
	for i, f := range moved {
		plan.Folders[i] = FolderPlacement{ID: f.ID, Order: i}
	}
	return plan, true
}

func planNoteOntoNote(sourceID, targetID int, notes []domain.Note) (Plan, bool) {
	src, ok := findNote(notes, sourceID)
	if !ok {
		return Plan{}, false
	}
	dst, ok := findNote(notes, targetID)
	if !ok {
		return Plan{}, false
	}

	if !domain.SameFolder(src.FolderID, dst.FolderID) {
		// Append to the end of the target group; neither group is renumbered
		return Plan{Notes: []NotePlacement{{
			ID:       src.ID,
			FolderID: domain.CloneFolderID(dst.FolderID),
			Order:    domain.NextNoteOrder(notes, dst.FolderID),
		}}}, true
	}

	group := domain.Siblings(notes, src.FolderID)
	from := slices.IndexFunc(group, func(n domain.Note) bool { return n.ID == src.ID })
	to := slices.IndexFunc(group, func(n domain.Note) bool { return n.ID == dst.ID })

	moved := arrayMove(group, from, to)
	plan := Plan{Notes: make([]NotePlacement, len(moved))}
	for i, n := range moved {
		plan.Notes[i] = NotePlacement{ID: n.ID, FolderID: domain.CloneFolderID(n.FolderID), Order: i}
	}
	return plan, true
}

func planNoteOntoFolder(noteID, folderID int, notes []domain.Note, folders []domain.Folder) (Plan, bool) {
	src, ok := findNote(notes, noteID)
	if !ok || !slices.ContainsFunc(folders, func(f domain.Folder) bool { return f.ID == folderID }) {
		return Plan{}, false
	}

	target := domain.FolderRef(folderID)
	return Plan{Notes: []NotePlacement{{
		ID:       src.ID,
		FolderID: target,
		Order:    domain.NextNoteOrder(notes, target),
	}}}, true
}

// arrayMove returns a copy of items with the element at from moved to index to
func arrayMove[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	item := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, item)
}

func findNote(notes []domain.Note, id int) (domain.Note, bool) {
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return domain.Note{}, false
}
