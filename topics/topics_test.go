package topics

import (
	"bytes"
	"strings"
	"testing"
)

func TestRandomTopicsDistinct(t *testing.T) {
	all := All()
	known := make(map[string]bool, len(all))
	for _, topic := range all {
		known[topic] = true
	}

	got := RandomTopics(10)
	if len(got) != 10 {
		t.Fatalf("expected 10 topics, got %d", len(got))
	}

	seen := make(map[string]bool)
	for _, topic := range got {
		if !known[topic] {
			t.Errorf("topic %q is not in the catalog", topic)
		}
		if seen[topic] {
			t.Errorf("topic %q suggested twice", topic)
		}
		seen[topic] = true
	}
}

func TestRandomTopicsCapped(t *testing.T) {
	got := RandomTopics(len(All()) + 50)
	if len(got) != len(All()) {
		t.Fatalf("expected %d topics, got %d", len(All()), len(got))
	}
}

func TestRandomIsFromCatalog(t *testing.T) {
	all := All()
	known := make(map[string]bool, len(all))
	for _, topic := range all {
		known[topic] = true
	}
	for i := 0; i < 20; i++ {
		if topic := Random(); !known[topic] {
			t.Fatalf("Random() returned %q, not in catalog", topic)
		}
	}
}

func TestChooseInteractiveCustom(t *testing.T) {
	in := strings.NewReader("custom\nquantum gardening\n")
	var out bytes.Buffer

	got := ChooseInteractive(in, &out)
	if got != "quantum gardening" {
		t.Fatalf("expected custom topic, got %q", got)
	}
}

func TestChooseInteractiveInvalidFallsBack(t *testing.T) {
	in := strings.NewReader("not-a-number\n")
	var out bytes.Buffer

	got := ChooseInteractive(in, &out)
	if got == "" {
		t.Fatal("expected a fallback topic, got empty string")
	}
}
