package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Profile holds the current mastery profile document per child. The
// document is the JSON-serialized aggregate; writes replace it whole
// (last writer wins).
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("child_id").
			NotEmpty().
			Unique(),
		field.String("family_id").
			NotEmpty(),
		field.JSON("data", map[string]any{}).
			Comment("Serialized mastery profile document"),
		field.Int("version").
			Comment("Profile schema version at last write"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("family_id"),
	}
}
