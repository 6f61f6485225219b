package app

import (
	"sync"
	"testing"
)

func TestUserLocksSerializeAndRelease(t *testing.T) {
	locks := newUserLocks()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.lock("u1")
			counter++
			release()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50 increments, got %d", counter)
	}
	if n := locks.size(); n != 0 {
		t.Fatalf("expected no retained locks, got %d", n)
	}
}

func TestUserLocksIndependentUsers(t *testing.T) {
	locks := newUserLocks()
	releaseA := locks.lock("a")
	done := make(chan struct{})
	go func() {
		release := locks.lock("b")
		release()
		close(done)
	}()
	<-done
	releaseA()
}
