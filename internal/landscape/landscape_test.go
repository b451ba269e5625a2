package landscape

import (
	"errors"
	"math/rand/v2"
	"testing"
)

const sampleYAML = `landscape:
  - name: App Definition and Development
    subcategories:
      - name: Database
        items:
          - name: TiKV
            project: graduated
            homepage_url: https://tikv.org/
            repo_url: https://github.com/tikv/tikv
            logo: tikv.svg
          - name: Old Thing
            project: archived
            logo: old-thing.svg
  - name: Runtime
    subcategories:
      - name: Container Runtime
        items:
          - name: containerd
            project: graduated
            description: An industry-standard container runtime
            homepage_url: https://containerd.io
            repo_url: https://github.com/containerd/containerd
            logo: containerd.svg
`

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 13))
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "empty landscape key", data: "landscape: []", wantErr: ErrEmptyCatalog},
		{name: "unrelated document", data: "foo: bar", wantErr: ErrEmptyCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPick_FlattensCategoryPath(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	rng := testRNG()
	for i := 0; i < 50; i++ {
		item, err := c.Pick(rng)
		if err != nil {
			t.Fatalf("Pick() error = %v", err)
		}
		if item.Name == "" || item.Category == "" || item.Subcategory == "" {
			t.Fatalf("Pick() returned incomplete item: %+v", item)
		}
	}
}

func TestPickActive_SkipsArchived(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	rng := testRNG()
	for i := 0; i < 50; i++ {
		item, err := c.PickActive(rng)
		if err != nil {
			t.Fatalf("PickActive() error = %v", err)
		}
		if item.Archived() {
			t.Fatalf("PickActive() returned archived item %q", item.Name)
		}
	}
}

func TestPickActive_AllArchived(t *testing.T) {
	const allArchived = `landscape:
  - name: Graveyard
    subcategories:
      - name: Retired
        items:
          - name: Ghost
            project: archived
`
	c, err := Parse([]byte(allArchived))
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.PickActive(testRNG())
	if !errors.Is(err, ErrAllArchived) {
		t.Errorf("PickActive() error = %v, want ErrAllArchived", err)
	}
}

func TestItem_Archived(t *testing.T) {
	tests := []struct {
		project string
		want    bool
	}{
		{"archived", true},
		{"Archived", true},
		{"graduated", false},
		{"", false},
	}

	for _, tt := range tests {
		item := Item{Project: tt.project}
		if got := item.Archived(); got != tt.want {
			t.Errorf("Archived() with project %q = %v, want %v", tt.project, got, tt.want)
		}
	}
}
