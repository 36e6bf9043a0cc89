package store

import (
	"context"
	"fmt"

	"github.com/abhisek/adaptiq/ent"
	entsnapshot "github.com/abhisek/adaptiq/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	doc, err := profileToDoc(snap.Profile)
	if err != nil {
		return fmt.Errorf("marshal snapshot profile: %w", err)
	}

	_, err = r.client.Snapshot.Create().
		SetChildID(snap.ChildID).
		SetSequence(snap.Sequence).
		SetTimestamp(snap.Timestamp).
		SetData(doc).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, childID string) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Where(entsnapshot.ChildID(childID)).
		Order(ent.Desc(entsnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	p, err := profileFromDoc(row.Data)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &Snapshot{
		ChildID:   row.ChildID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Profile:   p,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, childID string, keep int) error {
	// Find the timestamp threshold: the child's Nth most recent snapshot.
	rows, err := r.client.Snapshot.Query().
		Where(entsnapshot.ChildID(childID)).
		Order(ent.Desc(entsnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := rows[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(
			entsnapshot.ChildID(childID),
			entsnapshot.TimestampLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
