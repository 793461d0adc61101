package pkguid

import "testing"

func TestGenerateRandomNodeIDRange(t *testing.T) {
	id, err := generateRandomNodeID()
	if err != nil {
		t.Fatalf("generateRandomNodeID: %v", err)
	}

	if id < 0 || id > MaxNode {
		t.Fatalf("expected id within 0..%d, got %d", MaxNode, id)
	}
}

func TestSnowflakeGenerateUnique(t *testing.T) {
	gen, err := NewSnowflake()
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}

	seen := make(map[int64]struct{}, 1000)
	for range 1000 {
		id := gen.Generate()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewSnowflakeNodeRange(t *testing.T) {
	if _, err := NewSnowflakeNode(-1); err == nil {
		t.Fatal("expected error for negative node")
	}
	if _, err := NewSnowflakeNode(MaxNode + 1); err == nil {
		t.Fatal("expected error for node above range")
	}

	gen, err := NewSnowflakeNode(MaxNode)
	if err != nil {
		t.Fatalf("NewSnowflakeNode: %v", err)
	}
	if gen.Generate() <= 0 {
		t.Fatal("expected positive id")
	}
}
