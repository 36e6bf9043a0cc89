package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/adaptiq/ent"
	entprofile "github.com/abhisek/adaptiq/ent/profile"
	"github.com/abhisek/adaptiq/internal/mastery"
)

// profileRepo implements ProfileRepo. The profile document is stored
// whole as JSON; concurrent writers are resolved last-writer-wins at
// the row level, never merged.
type profileRepo struct {
	client *ent.Client

	mu     sync.Mutex
	nextID int
	subs   map[int]func(*mastery.Profile)
}

func newProfileRepo(client *ent.Client) *profileRepo {
	return &profileRepo{
		client: client,
		subs:   make(map[int]func(*mastery.Profile)),
	}
}

func (r *profileRepo) Get(ctx context.Context, childID string) (*mastery.Profile, error) {
	row, err := r.client.Profile.Query().
		Where(entprofile.ChildID(childID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return profileFromDoc(row.Data)
}

func (r *profileRepo) Put(ctx context.Context, p *mastery.Profile) error {
	doc, err := profileToDoc(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	existing, err := r.client.Profile.Query().
		Where(entprofile.ChildID(p.ChildID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetFamilyID(p.FamilyID).
			SetData(doc).
			SetVersion(p.Version).
			Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.Profile.Create().
			SetChildID(p.ChildID).
			SetFamilyID(p.FamilyID).
			SetData(doc).
			SetVersion(p.Version).
			Save(ctx)
	default:
		return fmt.Errorf("query profile: %w", err)
	}
	if err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	r.notify(p)
	return nil
}

func (r *profileRepo) Subscribe(fn func(*mastery.Profile)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

func (r *profileRepo) notify(p *mastery.Profile) {
	r.mu.Lock()
	fns := make([]func(*mastery.Profile), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// profileToDoc round-trips the profile through JSON into the
// map[string]any shape ent's JSON field stores.
func profileToDoc(p *mastery.Profile) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func profileFromDoc(doc map[string]any) (*mastery.Profile, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal profile doc: %w", err)
	}
	var p mastery.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile doc: %w", err)
	}
	if p.TopicMastery == nil {
		p.TopicMastery = make(map[string]*mastery.TopicMastery)
	}
	return &p, nil
}
