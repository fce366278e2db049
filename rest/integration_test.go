package rest

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/npage/paging"
)

// newListBackend serves a three-item list over two Marker/NextMarker pages
// and records the markers and iterator tags it saw.
func newListBackend(markers *[]string, tags *[]string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/objects", func(c *gin.Context) {
		*markers = append(*markers, c.Query("Marker"))
		*tags = append(*tags, c.GetHeader(IteratorTagHeader))

		switch c.Query("Marker") {
		case "":
			c.JSON(200, gin.H{
				"Items":       []string{"a", "b"},
				"NextMarker":  "m1",
				"IsTruncated": true,
			})
		case "m1":
			c.JSON(200, gin.H{
				"Items":       []string{"c"},
				"IsTruncated": false,
			})
		default:
			c.JSON(404, gin.H{"error": "unknown marker"})
		}
	})
	return router
}

func TestIterateOverHTTPBackend(t *testing.T) {
	var markers, tags []string
	server := httptest.NewServer(newListBackend(&markers, &tags))
	defer server.Close()

	registry := paging.NewRegistry(map[string]paging.Config{
		"ListObjects": {
			InputToken:  []string{"Marker"},
			OutputToken: []string{"NextMarker"},
			ResultKey:   "Items",
			MoreResults: "IsTruncated",
		},
	}, nil)

	op := NewOperation("ListObjects", server.URL+"/objects")
	it, err := registry.Build(op, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	items, err := paging.Collect(context.Background(), it)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	want := []any{"a", "b", "c"}
	if len(items) != len(want) {
		t.Fatalf("items = %v, want %v", items, want)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("items = %v, want %v", items, want)
		}
	}

	if len(markers) != 2 || markers[0] != "" || markers[1] != "m1" {
		t.Errorf("markers = %v, want [\"\" m1]", markers)
	}
	for i, tag := range tags {
		if tag != it.ID() {
			t.Errorf("request %d iterator tag = %q, want %q", i, tag, it.ID())
		}
	}

	if it.LastResult() == nil {
		t.Fatal("LastResult is nil after iteration")
	}
	if got := it.LastResult().GetPath("IsTruncated"); got != false {
		t.Errorf("LastResult IsTruncated = %v, want false", got)
	}
}
