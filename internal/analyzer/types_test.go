package analyzer

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCategories_InsertionOrder(t *testing.T) {
	c := NewCategories()
	c.ensure("Zebra")
	c.ensure("Alpha")
	c.ensure("Mango")
	c.ensure("Alpha")

	names := c.Names()
	if len(names) != 3 {
		t.Fatalf("expected 3 names, got %d", len(names))
	}
	if names[0] != "Zebra" || names[1] != "Alpha" || names[2] != "Mango" {
		t.Fatalf("expected insertion order preserved, got %v", names)
	}
}

func TestCategories_MarshalPreservesOrder(t *testing.T) {
	c := NewCategories()
	c.ensure("Zebra").Savings = 1
	c.ensure("Alpha").Savings = 2

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	s := string(data)
	if strings.Index(s, "Zebra") > strings.Index(s, "Alpha") {
		t.Fatalf("expected Zebra before Alpha in output: %s", s)
	}
}

func TestCategories_MarshalDeterministic(t *testing.T) {
	c := NewCategories()
	c.ensure("EC2 Instances")
	c.ensure("EBS Volumes")

	first, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(first) != string(again) {
			t.Fatal("marshal output not deterministic")
		}
	}
}

func TestCategories_EmptyBucketItemsNotNull(t *testing.T) {
	c := NewCategories()
	c.ensure("Elastic IPs")

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"items":[]`) {
		t.Fatalf("expected empty items array, got %s", data)
	}
}

func TestCategories_UnmarshalSortedOrder(t *testing.T) {
	data := []byte(`{"Zebra":{"count":1,"savings":5,"items":[]},"Alpha":{"count":2,"savings":10,"items":[]}}`)

	var c Categories
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	names := c.Names()
	if names[0] != "Alpha" || names[1] != "Zebra" {
		t.Fatalf("expected sorted order on load, got %v", names)
	}
}
