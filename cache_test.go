package stanza

import (
	"errors"
	"testing"
	"time"
)

const draftPost = `+++
title = 'Work In Progress'
date = 2024-06-01T00:00:00+00:00
draft = true
tags = 'ideas'
+++
Not ready yet.
`

const taggedPost = `+++
title = 'Tagged'
date = 2024-04-01T00:00:00+00:00
tags = 'go, testing'
+++
Tagged body.
`

func setupTestCache(t *testing.T, ttl time.Duration) (*ContentCache, string) {
	t.Helper()
	dir := t.TempDir()
	writeContentFile(t, dir, "hello.md", validPost)
	writeContentFile(t, dir, "tagged.md", taggedPost)
	writeContentFile(t, dir, "wip.md", draftPost)
	return NewContentCache(NewLibrary(dir), ttl), dir
}

func TestCacheListPostsExcludesDrafts(t *testing.T) {
	cache, _ := setupTestCache(t, time.Minute)

	posts, err := cache.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	// Newest first.
	if posts[0].Slug != "tagged" || posts[1].Slug != "hello" {
		t.Errorf("order = [%s %s], want [tagged hello]", posts[0].Slug, posts[1].Slug)
	}
}

func TestCacheListPostsByTag(t *testing.T) {
	cache, _ := setupTestCache(t, time.Minute)

	posts, err := cache.ListPosts("go")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "tagged" {
		t.Errorf("tag filter returned %v", posts)
	}
}

func TestCacheListTags(t *testing.T) {
	cache, _ := setupTestCache(t, time.Minute)

	tags, err := cache.ListTags()
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	// Draft-only tags must not leak into the public tag list.
	want := []string{"go", "testing"}
	if len(tags) != len(want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags = %v, want %v", tags, want)
			break
		}
	}
}

func TestCacheGetPost(t *testing.T) {
	cache, _ := setupTestCache(t, time.Minute)

	post, err := cache.GetPost("hello")
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if post.Title != "Hello" {
		t.Errorf("Title = %q, want %q", post.Title, "Hello")
	}

	if _, err := cache.GetPost("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing slug: err = %v, want ErrNotFound", err)
	}

	// Drafts are invisible through GetPost but visible through GetPostAny.
	if _, err := cache.GetPost("wip"); !errors.Is(err, ErrNotFound) {
		t.Errorf("draft via GetPost: err = %v, want ErrNotFound", err)
	}
	draft, err := cache.GetPostAny("wip")
	if err != nil {
		t.Fatalf("GetPostAny: %v", err)
	}
	if !draft.Draft {
		t.Error("GetPostAny should return the draft")
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache, dir := setupTestCache(t, time.Hour)

	posts, err := cache.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}

	// New file is not visible until the cache is invalidated.
	writeContentFile(t, dir, "later.md", `+++
title = 'Later'
date = 2024-07-01T00:00:00+00:00
+++
`)
	posts, _ = cache.ListPosts("")
	if len(posts) != 2 {
		t.Fatalf("cache should still serve stale data, got %d posts", len(posts))
	}

	cache.Invalidate()
	posts, err = cache.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts after Invalidate: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts after invalidate, want 3", len(posts))
	}
	if posts[0].Slug != "later" {
		t.Errorf("newest post first, got %q", posts[0].Slug)
	}
}

func TestCacheReportsSkippedFiles(t *testing.T) {
	dir := t.TempDir()
	writeContentFile(t, dir, "good.md", validPost)
	writeContentFile(t, dir, "broken.md", brokenPost)

	cache := NewContentCache(NewLibrary(dir), time.Minute)
	var skipped []*FileError
	cache.OnScanError = func(fe *FileError) {
		skipped = append(skipped, fe)
	}

	posts, err := cache.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	if len(skipped) != 1 {
		t.Fatalf("got %d skip callbacks, want 1", len(skipped))
	}
}
