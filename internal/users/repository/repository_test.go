package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilter_Empty(t *testing.T) {
	filter := searchFilter("")
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestSearchFilter_NameAndEmail(t *testing.T) {
	filter := searchFilter("smith")

	or, ok := filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("expected $or clause, got %v", filter)
	}
	if len(or) != 2 {
		t.Fatalf("expected 2 search fields, got %d", len(or))
	}

	fields := map[string]bool{}
	for _, clause := range or {
		for field, value := range clause.(bson.M) {
			rx, ok := value.(primitive.Regex)
			if !ok {
				t.Fatalf("field %s: expected regex, got %T", field, value)
			}
			if rx.Pattern != "smith" || rx.Options != "i" {
				t.Fatalf("field %s: unexpected regex %v", field, rx)
			}
			fields[field] = true
		}
	}
	if !fields["name"] || !fields["email"] {
		t.Fatalf("expected search over name and email, got %v", fields)
	}
}

func TestSearchFilter_MetacharactersMatchLiterally(t *testing.T) {
	filter := searchFilter("jo+admin@example.com")

	or := filter["$or"].(bson.A)
	rx, ok := or[0].(bson.M)["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex, got %v", or[0])
	}
	if rx.Pattern != `jo\+admin@example\.com` {
		t.Fatalf("expected quoted pattern, got %q", rx.Pattern)
	}
}
