package plugin

import (
	"errors"
	"testing"
)

func descriptorFor(path string) *Descriptor {
	return newDescriptor(&fakeModule{path: path})
}

func TestRegistryAppendPreservesOrder(t *testing.T) {
	r := NewRegistry()
	r.Append(descriptorFor("/mod/a.so"))
	r.Append(descriptorFor("/mod/b.so"))
	r.Append(descriptorFor("/mod/a.so")) // duplicates are independent entries

	if r.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", r.Len())
	}

	var paths []string
	r.ForEach(func(d *Descriptor) bool {
		paths = append(paths, d.Path)
		return true
	})

	want := []string{"/mod/a.so", "/mod/b.so", "/mod/a.so"}
	for i, p := range want {
		if paths[i] != p {
			t.Fatalf("entry %d: expected %s, got %s", i, p, paths[i])
		}
	}
}

func TestRegistryForEachStops(t *testing.T) {
	r := NewRegistry()
	r.Append(descriptorFor("/mod/a.so"))
	r.Append(descriptorFor("/mod/b.so"))
	r.Append(descriptorFor("/mod/c.so"))

	visited := 0
	r.ForEach(func(d *Descriptor) bool {
		visited++
		return d.Path != "/mod/b.so"
	})

	if visited != 2 {
		t.Fatalf("expected traversal to stop after 2 visits, got %d", visited)
	}
}

func TestRegistryDrainAndReleaseContinuesPastFailures(t *testing.T) {
	r := NewRegistry()
	r.Append(descriptorFor("/mod/a.so"))
	r.Append(descriptorFor("/mod/b.so"))
	r.Append(descriptorFor("/mod/c.so"))

	failure := errors.New("uninit failed")
	var torn []string
	err := r.DrainAndRelease(func(d *Descriptor) error {
		torn = append(torn, d.Path)
		if d.Path == "/mod/a.so" {
			return failure
		}
		return nil
	})

	if len(torn) != 3 {
		t.Fatalf("expected every module torn down, got %v", torn)
	}
	if torn[0] != "/mod/a.so" || torn[1] != "/mod/b.so" || torn[2] != "/mod/c.so" {
		t.Fatalf("teardown out of load order: %v", torn)
	}
	if !errors.Is(err, failure) {
		t.Fatalf("expected joined error to carry %v, got %v", failure, err)
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry after drain, got %d entries", r.Len())
	}
}

func TestRegistryDrainAndReleaseEmpty(t *testing.T) {
	r := NewRegistry()
	if err := r.DrainAndRelease(func(*Descriptor) error { return nil }); err != nil {
		t.Fatalf("unexpected error draining empty registry: %v", err)
	}
}
