package render

import (
	"context"
	"runtime"
	"sync"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit value takes priority",
			workers: 5,
			want:    5,
		},
		{
			name:    "explicit 1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "explicit value above cap is clamped",
			workers: MaxPoolSize + 4,
			want:    MaxPoolSize,
		},
		{
			name:    "zero uses bounded default",
			workers: 0,
			want:    max(min(DefaultPoolSize, gomaxprocs), 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePoolSize(tt.workers)
			if got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestResolvePoolSize_DefaultNeverExceedsThree(t *testing.T) {
	if got := ResolvePoolSize(0); got > DefaultPoolSize {
		t.Errorf("ResolvePoolSize(0) = %d, must not exceed %d", got, DefaultPoolSize)
	}
}

func TestServicePool_AcquireRelease(t *testing.T) {
	pool := NewServicePool(2, WithCompression(false))
	defer pool.Close()

	svc1 := pool.Acquire()
	if svc1 == nil {
		t.Fatal("Acquire() returned nil")
	}
	svc2 := pool.Acquire()
	if svc2 == nil {
		t.Fatal("second Acquire() returned nil")
	}
	if svc1 == svc2 {
		t.Error("pool handed out the same service twice without release")
	}

	pool.Release(svc1)
	svc3 := pool.Acquire()
	if svc3 != svc1 {
		t.Error("released service was not reused")
	}
}

func TestServicePool_MinimumSize(t *testing.T) {
	pool := NewServicePool(0)
	defer pool.Close()

	if pool.Size() != 1 {
		t.Errorf("Size() = %d, want 1", pool.Size())
	}
}

func TestServicePool_ParallelConvert(t *testing.T) {
	pool := NewServicePool(DefaultPoolSize, WithCompression(false))
	defer pool.Close()

	const jobs = 9
	var wg sync.WaitGroup
	errs := make([]error, jobs)

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			svc := pool.Acquire()
			defer pool.Release(svc)
			_, errs[idx] = svc.Convert(context.Background(), Input{SVG: []byte(squareSVG), Height: 32})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("job %d: %v", i, err)
		}
	}
}

func TestServicePool_CloseIsIdempotent(t *testing.T) {
	pool := NewServicePool(1)
	pool.Acquire()

	if err := pool.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}

func TestServicePool_ConcurrentReleaseClose(t *testing.T) {
	for i := 0; i < 50; i++ {
		pool := NewServicePool(1)
		svc := pool.Acquire()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			pool.Release(svc)
		}()
		go func() {
			defer wg.Done()
			_ = pool.Close()
		}()
		wg.Wait()
	}
}

func TestServicePool_ReleaseAfterClose(t *testing.T) {
	pool := NewServicePool(1)
	svc := pool.Acquire()

	if err := pool.Close(); err != nil {
		t.Fatal(err)
	}

	// Must not panic on the closed channel.
	pool.Release(svc)
}
