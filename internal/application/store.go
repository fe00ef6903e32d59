package application

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"noted/internal/domain"
	"noted/internal/ports"
)

// settingUsername is the settings key of the home view display name
const settingUsername = "username"

// Store is the single owner of the note and folder collections. Every
// mutation commits to memory under the lock and then hands a snapshot to
// the background writer; callers never wait for storage.
type Store struct {
	gateway ports.Gateway
	log     zerolog.Logger
	writer  *writer

	mu           sync.Mutex
	loaded       bool
	notes        []domain.Note // creation order
	folders      []domain.Folder
	nextNoteID   int
	nextFolderID int
	username     string
	edits        map[domain.Ref]*Edit
	sel          selection
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for storage failures and lifecycle events
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates a Store over gateway. Load must be called before any
// mutation.
func NewStore(gateway ports.Gateway, opts ...Option) *Store {
	s := &Store{
		gateway:  gateway,
		log:      zerolog.Nop(),
		username: domain.DefaultUsername,
		edits:    make(map[domain.Ref]*Edit),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.writer = newWriter(gateway, s.log.With().Str("component", "writer").Logger())
	return s
}

// Load reads both collections and the username. Storage errors are logged
// and treated as empty collections. When no notes exist a default note is
// seeded; nothing is written until that decision is made.
func (s *Store) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	notes, err := s.gateway.LoadNotes(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load notes, starting empty")
		notes = nil
	}
	folders, err := s.gateway.LoadFolders(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load folders, starting empty")
		folders = nil
	}
	username, ok, err := s.gateway.Setting(ctx, settingUsername)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load username")
	}
	if !ok || strings.TrimSpace(username) == "" {
		username = domain.DefaultUsername
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slices.SortFunc(notes, func(a, b domain.Note) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortFunc(folders, func(a, b domain.Folder) int { return cmp.Compare(a.ID, b.ID) })

	repaired := false
	for i, n := range notes {
		if n.FolderID != nil && !slices.ContainsFunc(folders, func(f domain.Folder) bool { return f.ID == *n.FolderID }) {
			s.log.Warn().Int("note", n.ID).Int("folder", *n.FolderID).Msg("note references missing folder, moving to root")
			notes[i].FolderID = nil
			repaired = true
		}
	}

	seeded := len(notes) == 0
	if seeded {
		notes = []domain.Note{defaultNote(1)}
	}

	s.notes = notes
	s.folders = folders
	s.nextNoteID = notes[len(notes)-1].ID + 1
	s.nextFolderID = 1
	if len(folders) > 0 {
		s.nextFolderID = folders[len(folders)-1].ID + 1
	}
	s.username = username
	s.edits = make(map[domain.Ref]*Edit)
	s.sel = selection{noteID: notes[0].ID, view: ViewHome}
	s.loaded = true

	if seeded || repaired {
		s.commit()
	}

	s.log.Info().
		Int("notes", len(s.notes)).
		Int("folders", len(s.folders)).
		Bool("seeded", seeded).
		Msg("store loaded")
	return nil
}

// Flush blocks until every committed mutation has been written
func (s *Store) Flush() {
	s.writer.flush()
}

// Close flushes pending writes, stops the writer and closes the gateway
func (s *Store) Close() error {
	s.writer.close()
	return s.gateway.Close()
}

func defaultNote(id int) domain.Note {
	return domain.Note{
		ID:    id,
		Name:  domain.DefaultNoteName,
		Icon:  domain.DefaultNoteIcon,
		Order: 0,
	}
}

// commit schedules a write of the current collections. Callers hold s.mu.
func (s *Store) commit() {
	s.commitWith(nil)
}

func (s *Store) commitWith(settings map[string]string) {
	notes := make([]domain.Note, len(s.notes))
	for i, n := range s.notes {
		notes[i] = n.Clone()
	}
	s.writer.schedule(&snapshot{
		notes:    notes,
		folders:  slices.Clone(s.folders),
		settings: settings,
	})
}

func (s *Store) requireLoaded() error {
	if !s.loaded {
		return ErrNotLoaded
	}
	return nil
}

func (s *Store) noteIndex(id int) int {
	return slices.IndexFunc(s.notes, func(n domain.Note) bool { return n.ID == id })
}

func (s *Store) folderIndex(id int) int {
	return slices.IndexFunc(s.folders, func(f domain.Folder) bool { return f.ID == id })
}

func (s *Store) lookupNote(id int) (int, error) {
	if err := s.requireLoaded(); err != nil {
		return -1, err
	}
	i := s.noteIndex(id)
	if i < 0 {
		return -1, noteNotFound(id)
	}
	return i, nil
}

func (s *Store) lookupFolder(id int) (int, error) {
	if err := s.requireLoaded(); err != nil {
		return -1, err
	}
	i := s.folderIndex(id)
	if i < 0 {
		return -1, folderNotFound(id)
	}
	return i, nil
}

// AddNote creates a note at the end of the target group (nil for root) and
// selects it. An unknown folder falls back to root.
func (s *Store) AddNote(folderID *int) (domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return domain.Note{}, err
	}

	target := domain.CloneFolderID(folderID)
	if target != nil && s.folderIndex(*target) < 0 {
		s.log.Warn().Int("folder", *target).Msg("add note to unknown folder, using root")
		target = nil
	}

	id := s.nextNoteID
	s.nextNoteID++
	n := domain.Note{
		ID:       id,
		Name:     domain.DefaultNoteNameFor(id),
		Icon:     domain.DefaultNoteIcon,
		FolderID: target,
		Order:    domain.NextNoteOrder(s.notes, target),
	}
	s.notes = append(s.notes, n)
	s.sel.noteID = id
	s.commit()

	s.log.Debug().Int("note", id).Str("group", domain.FormatFolderID(target)).Msg("note added")
	return n.Clone(), nil
}

// AddFolder creates an expanded folder at the end of the folder list. Its
// color is picked by the number of folders that exist right now.
func (s *Store) AddFolder() (domain.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return domain.Folder{}, err
	}

	id := s.nextFolderID
	s.nextFolderID++
	f := domain.Folder{
		ID:         id,
		Name:       domain.DefaultFolderNameFor(id),
		IsExpanded: true,
		Order:      domain.NextFolderOrder(s.folders),
		Color:      domain.PaletteColor(len(s.folders)),
	}
	s.folders = append(s.folders, f)
	s.commit()

	s.log.Debug().Int("folder", id).Str("color", f.Color).Msg("folder added")
	return f, nil
}

// RenameNote sets a note's name. A name that trims to empty is discarded
// and reported as false.
func (s *Store) RenameNote(id int, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renameLocked(domain.NoteRef(id), name)
}

// RenameFolder sets a folder's name. A name that trims to empty is
// discarded and reported as false.
func (s *Store) RenameFolder(id int, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renameLocked(domain.FolderItemRef(id), name)
}

func (s *Store) renameLocked(ref domain.Ref, name string) (bool, error) {
	name = strings.TrimSpace(name)

	switch ref.Kind {
	case domain.KindNote:
		i, err := s.lookupNote(ref.ID)
		if err != nil {
			return false, err
		}
		if name == "" {
			return false, nil
		}
		s.notes[i].Name = name
	case domain.KindFolder:
		i, err := s.lookupFolder(ref.ID)
		if err != nil {
			return false, err
		}
		if name == "" {
			return false, nil
		}
		s.folders[i].Name = name
	default:
		return false, ErrInvalidOperation
	}

	s.commit()
	return true, nil
}

// DeleteNote removes a note. When it was selected the first remaining note
// is selected; when it was the last note a fresh default note replaces it.
func (s *Store) DeleteNote(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupNote(id)
	if err != nil {
		return err
	}

	s.notes = slices.Delete(s.notes, i, i+1)
	delete(s.edits, domain.NoteRef(id))

	if len(s.notes) == 0 {
		n := defaultNote(s.nextNoteID)
		s.nextNoteID++
		s.notes = append(s.notes, n)
		s.sel.noteID = n.ID
		s.log.Debug().Int("note", n.ID).Msg("last note deleted, default note created")
	} else if s.sel.noteID == id {
		s.sel.noteID = s.notes[0].ID
	}

	s.commit()
	return nil
}

// DeleteFolder removes a folder and promotes its notes to root. Promoted
// notes keep their order value.
func (s *Store) DeleteFolder(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupFolder(id)
	if err != nil {
		return err
	}

	s.folders = slices.Delete(s.folders, i, i+1)
	delete(s.edits, domain.FolderItemRef(id))

	promoted := 0
	for j := range s.notes {
		if s.notes[j].FolderID != nil && *s.notes[j].FolderID == id {
			s.notes[j].FolderID = nil
			promoted++
		}
	}

	s.commit()
	s.log.Debug().Int("folder", id).Int("promoted", promoted).Msg("folder deleted")
	return nil
}

// MoveNoteToFolder moves a note to the end of a folder, or of the root
// group when folderID is nil. Moving within the same group is a no-op.
func (s *Store) MoveNoteToFolder(id int, folderID *int) (domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupNote(id)
	if err != nil {
		return domain.Note{}, err
	}
	if folderID != nil && s.folderIndex(*folderID) < 0 {
		return domain.Note{}, &MoveError{
			SourceID: domain.NoteRef(id).String(),
			DestID:   domain.FormatFolderID(folderID),
			Reason:   "folder does not exist",
		}
	}
	if s.notes[i].InGroup(folderID) {
		return s.notes[i].Clone(), nil
	}

	target := domain.CloneFolderID(folderID)
	s.notes[i].Order = domain.NextNoteOrder(s.notes, target)
	s.notes[i].FolderID = target
	s.commit()

	return s.notes[i].Clone(), nil
}

// SetFolderColor sets a folder's display color
func (s *Store) SetFolderColor(id int, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupFolder(id)
	if err != nil {
		return err
	}
	s.folders[i].Color = color
	s.commit()
	return nil
}

// ToggleFolderExpanded flips a folder's expanded state and returns the new one
func (s *Store) ToggleFolderExpanded(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupFolder(id)
	if err != nil {
		return false, err
	}
	s.folders[i].IsExpanded = !s.folders[i].IsExpanded
	s.commit()
	return s.folders[i].IsExpanded, nil
}

// UpdateNoteContent stores the editor payload verbatim
func (s *Store) UpdateNoteContent(id int, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupNote(id)
	if err != nil {
		return err
	}
	s.notes[i].Content = content
	s.commit()
	return nil
}

// SetNoteIcon sets a custom icon. An empty icon restores the default glyph.
func (s *Store) SetNoteIcon(id int, icon string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupNote(id)
	if err != nil {
		return err
	}
	s.notes[i].Icon = strings.TrimSpace(icon)
	s.commit()
	return nil
}

// RemoveNoteIcon clears the icon so the folder-derived glyph is used
func (s *Store) RemoveNoteIcon(id int) error {
	return s.SetNoteIcon(id, "")
}

// SetNoteTitle sets the title typed in the editor header. Unlike a rename,
// an empty title is kept as "Untitled".
func (s *Store) SetNoteTitle(id int, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupNote(id)
	if err != nil {
		return err
	}
	s.notes[i].Name = domain.NormalizeName(title)
	s.commit()
	return nil
}

// Drop applies a drag-and-drop of source onto target. It reports false when
// the drop changes nothing.
func (s *Store) Drop(source, target domain.Ref) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return false, err
	}

	plan, ok := PlanDrop(source, target, s.notes, s.folders)
	if !ok || plan.Empty() {
		return false, nil
	}

	for _, p := range plan.Notes {
		if i := s.noteIndex(p.ID); i >= 0 {
			s.notes[i].FolderID = domain.CloneFolderID(p.FolderID)
			s.notes[i].Order = p.Order
		}
	}
	for _, p := range plan.Folders {
		if i := s.folderIndex(p.ID); i >= 0 {
			s.folders[i].Order = p.Order
		}
	}
	s.commit()

	s.log.Debug().Stringer("source", source).Stringer("target", target).Msg("drop applied")
	return true, nil
}

// Username returns the home view display name
func (s *Store) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// SetUsername sets the display name. An empty name is discarded and
// reported as false.
func (s *Store) SetUsername(name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireLoaded(); err != nil {
		return false, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	s.username = name
	s.commitWith(map[string]string{settingUsername: name})
	return true, nil
}

// Notes returns a copy of all notes in creation order
func (s *Store) Notes() []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notesLocked()
}

func (s *Store) notesLocked() []domain.Note {
	out := make([]domain.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Clone()
	}
	return out
}

// Folders returns a copy of all folders sorted by order
func (s *Store) Folders() []domain.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.folders)
	domain.SortFolders(out)
	return out
}

// NotesIn returns one sibling group sorted by order (nil for root)
func (s *Store) NotesIn(folderID *int) []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Siblings(s.notesLocked(), folderID)
}

// Note returns a note by id
func (s *Store) Note(id int) (domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupNote(id)
	if err != nil {
		return domain.Note{}, err
	}
	return s.notes[i].Clone(), nil
}

// Folder returns a folder by id
func (s *Store) Folder(id int) (domain.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.lookupFolder(id)
	if err != nil {
		return domain.Folder{}, err
	}
	return s.folders[i], nil
}

// Tree builds the sidebar tree
func (s *Store) Tree() *domain.TreeNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.BuildTree(s.notesLocked(), s.folders)
}

// BeginEdit starts renaming a note or folder
func (s *Store) BeginEdit(ref domain.Ref) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var name string
	switch ref.Kind {
	case domain.KindNote:
		i, err := s.lookupNote(ref.ID)
		if err != nil {
			return err
		}
		name = s.notes[i].Name
	case domain.KindFolder:
		i, err := s.lookupFolder(ref.ID)
		if err != nil {
			return err
		}
		name = s.folders[i].Name
	default:
		return ErrInvalidOperation
	}

	e := &Edit{}
	e.Begin(name)
	s.edits[ref] = e
	return nil
}

// SetEditValue updates the pending name of an edit in progress
func (s *Store) SetEditValue(ref domain.Ref, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.edits[ref]; ok {
		e.Set(value)
	}
}

// EditValue returns the pending name and whether ref is being edited
func (s *Store) EditValue(ref domain.Ref) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.edits[ref]; ok {
		return e.Value(), true
	}
	return "", false
}

// SaveEdit commits the pending name. An empty value reverts to the current
// name and reports false.
func (s *Store) SaveEdit(ref domain.Ref) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.edits[ref]
	if !ok {
		return false, nil
	}
	delete(s.edits, ref)

	name, ok := e.Save()
	if !ok {
		return false, nil
	}
	return s.renameLocked(ref, name)
}

// CancelEdit discards the pending name
func (s *Store) CancelEdit(ref domain.Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.edits, ref)
}

// HandleEditKey saves on enter and cancels on escape. It reports whether
// the key ended the edit.
func (s *Store) HandleEditKey(ref domain.Ref, key string) (bool, error) {
	switch EditKeyAction(key) {
	case EditSave:
		_, err := s.SaveEdit(ref)
		return true, err
	case EditCancel:
		s.CancelEdit(ref)
		return true, nil
	default:
		return false, nil
	}
}

// Ensure Store implements ports.Notebook
var _ ports.Notebook = (*Store)(nil)
