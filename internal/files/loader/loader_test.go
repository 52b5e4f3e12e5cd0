package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/propdoc/propdoc/internal/files/filesystem"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

func newTestLoader() (*Loader, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/project")
	return NewLoaderWithFS(fs), fs
}

func TestNewLoaderWithFS_NilProvider(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil filesystem provider")
		}
	}()
	NewLoaderWithFS(nil)
}

func TestLoadDescriptors(t *testing.T) {
	l, fs := newTestLoader()
	fs.AddFile("app/META-INF/spring-configuration-metadata.json", `{
  "groups": [ { "name": "server" } ],
  "properties": [ { "name": "server.port", "defaultValue": 8080 } ]
}`)
	fs.AddFile("lib/META-INF/spring-configuration-metadata.json", `{
  "properties": [ { "name": "cache.size" } ]
}`)

	descriptors, err := l.LoadDescriptors([]string{"."})
	if err != nil {
		t.Fatalf("LoadDescriptors failed: %v", err)
	}

	if len(descriptors) != 2 {
		t.Fatalf("Expected 2 descriptors, got %d", len(descriptors))
	}

	first := descriptors[0]
	if first.Path != "./app/META-INF/spring-configuration-metadata.json" {
		t.Errorf("Unexpected first descriptor path: %q", first.Path)
	}
	if len(first.Items) != 2 {
		t.Fatalf("Expected 2 items in first descriptor, got %d", len(first.Items))
	}
	if first.Items[0].Kind != propdoc.KindGroup || first.Items[0].Name != "server" {
		t.Errorf("Expected group 'server' first, got %s %q", first.Items[0].Kind, first.Items[0].Name)
	}
	if first.Items[1].Kind != propdoc.KindProperty || first.Items[1].Name != "server.port" {
		t.Errorf("Expected property 'server.port' second, got %s %q", first.Items[1].Kind, first.Items[1].Name)
	}

	second := descriptors[1]
	if len(second.Items) != 1 || second.Items[0].Name != "cache.size" {
		t.Errorf("Unexpected second descriptor items: %+v", second.Items)
	}
}

func TestLoadDescriptors_RootOrderPreserved(t *testing.T) {
	l, fs := newTestLoader()
	fs.AddFile("a/META-INF/spring-configuration-metadata.json", `{"properties":[{"name":"a.one"}]}`)
	fs.AddFile("b/META-INF/spring-configuration-metadata.json", `{"properties":[{"name":"b.one"}]}`)

	descriptors, err := l.LoadDescriptors([]string{"b", "a"})
	if err != nil {
		t.Fatalf("LoadDescriptors failed: %v", err)
	}

	if len(descriptors) != 2 {
		t.Fatalf("Expected 2 descriptors, got %d", len(descriptors))
	}
	if descriptors[0].Items[0].Name != "b.one" || descriptors[1].Items[0].Name != "a.one" {
		t.Errorf("Root order not preserved: %q then %q",
			descriptors[0].Items[0].Name, descriptors[1].Items[0].Name)
	}
}

func TestLoadDescriptors_Empty(t *testing.T) {
	l, fs := newTestLoader()
	fs.AddFile("app/application.yml", "server:\n  port: 8080\n")

	descriptors, err := l.LoadDescriptors([]string{"."})
	if err != nil {
		t.Fatalf("LoadDescriptors failed: %v", err)
	}
	if len(descriptors) != 0 {
		t.Errorf("Expected no descriptors, got %d", len(descriptors))
	}
}

func TestLoadDescriptors_MalformedFileFailsWholeLoad(t *testing.T) {
	l, fs := newTestLoader()
	fs.AddFile("good/META-INF/spring-configuration-metadata.json", `{"properties":[{"name":"ok.prop"}]}`)
	fs.AddFile("bad/META-INF/spring-configuration-metadata.json", `{"properties":[{"name":`)

	descriptors, err := l.LoadDescriptors([]string{"."})
	if err == nil {
		t.Fatal("Expected error for malformed descriptor")
	}
	if descriptors != nil {
		t.Error("No partial result should accompany an error")
	}
	if !errors.Is(err, propdoc.ErrDescriptorInvalid) {
		t.Errorf("Expected ErrDescriptorInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "bad/META-INF/spring-configuration-metadata.json") {
		t.Errorf("Error should name the malformed file, got: %v", err)
	}
}

func TestLoadDescriptors_NonexistentRoot(t *testing.T) {
	l, _ := newTestLoader()

	_, err := l.LoadDescriptors([]string{"missing"})
	if err == nil {
		t.Fatal("Expected error for nonexistent root")
	}
	if !errors.Is(err, propdoc.ErrDiscoveryFailed) {
		t.Errorf("Expected ErrDiscoveryFailed, got %v", err)
	}
}
