package landscape

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"App Definition and Development", "app-definition-and-development"},
		{"Scheduling & Orchestration", "scheduling-orchestration"},
		{"CI/CD", "ci-cd"},
		{"Already-Slugged", "already-slugged"},
		{"trailing!!", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := slugify(tt.in); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestItem_SiteURL(t *testing.T) {
	item := Item{
		Name:        "containerd",
		Category:    "Runtime",
		Subcategory: "Container Runtime",
	}

	want := "https://landscape.cncf.io/?item=runtime--container-runtime--containerd"
	if got := item.SiteURL(""); got != want {
		t.Errorf("SiteURL() = %q, want %q", got, want)
	}

	wantCustom := "https://example.test/?item=runtime--container-runtime--containerd"
	if got := item.SiteURL("https://example.test"); got != wantCustom {
		t.Errorf("SiteURL(custom) = %q, want %q", got, wantCustom)
	}
}

func TestItem_IconURL(t *testing.T) {
	tests := []struct {
		name string
		item Item
		base string
		want string
	}{
		{
			name: "svg extension swapped",
			item: Item{Logo: "containerd.svg"},
			base: "https://icons.example.test",
			want: "https://icons.example.test/containerd.png",
		},
		{
			name: "extensionless logo",
			item: Item{Logo: "tikv"},
			base: "https://icons.example.test/",
			want: "https://icons.example.test/tikv.png",
		},
		{
			name: "no logo yields empty",
			item: Item{},
			base: "https://icons.example.test",
			want: "",
		},
		{
			name: "no base yields empty",
			item: Item{Logo: "x.svg"},
			base: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.IconURL(tt.base); got != tt.want {
				t.Errorf("IconURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
