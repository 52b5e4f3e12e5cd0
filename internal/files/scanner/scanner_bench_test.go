package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

// BenchmarkScanRoots benchmarks descriptor discovery with the real filesystem
func BenchmarkScanRoots(b *testing.B) {
	tempDir := b.TempDir()

	// Ten modules, each with a descriptor plus unrelated noise files
	for i := 0; i < 10; i++ {
		moduleDir := filepath.Join(tempDir, "module"+string(rune('0'+i)), "META-INF")
		if err := os.MkdirAll(moduleDir, 0755); err != nil {
			b.Fatal(err)
		}
		descriptor := `{"groups":[{"name":"app"}],"properties":[{"name":"app.enabled","type":"java.lang.Boolean"}]}`
		if err := os.WriteFile(filepath.Join(moduleDir, "spring-configuration-metadata.json"), []byte(descriptor), 0644); err != nil {
			b.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(moduleDir, "MANIFEST.MF"), []byte("Manifest-Version: 1.0\n"), 0644); err != nil {
			b.Fatal(err)
		}
	}

	descriptorScanner := NewScanner()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		paths, err := descriptorScanner.ScanRoots([]string{tempDir})
		if err != nil {
			b.Fatal(err)
		}
		if len(paths) != 10 {
			b.Fatalf("expected 10 descriptors, got %d", len(paths))
		}
	}
}
