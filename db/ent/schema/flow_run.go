package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/dfgiraldo/pqr-pipeline/internal/entity"
)

// FlowRun persists one company's end-to-end pipeline invocation with its
// per-step results, so partial failures stay diagnosable after the fact.
type FlowRun struct {
	ent.Schema
}

func (FlowRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "flow_runs"},
	}
}

func (FlowRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("empresa").NotEmpty(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.Bool("success").Default(false),
		field.JSON("steps", []entity.FlowStepResult{}).Optional(),
	}
}

func (FlowRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("empresa", "started_at"),
	}
}
