package newslist

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard/internal/domain"
)

func TestRender_EmptyItems(t *testing.T) {
	tree := Render(domain.Section{})

	assert.Equal(t, "News", tree.Heading)
	assert.NotNil(t, tree.Rows)
	assert.Empty(t, tree.Rows)
}

func TestRender_Title(t *testing.T) {
	assert.Equal(t, "News", Render(domain.Section{}).Heading)
	assert.Equal(t, "Updates", Render(domain.Section{Title: "Updates"}).Heading)
}

func TestRender_PreservesInputOrder(t *testing.T) {
	section := domain.Section{Items: []domain.Item{
		{Date: "2020-01-01", Content: "A"},
		{Date: "2024-06-01", Content: "B"},
		{Date: "2019-03-01", Content: "C"},
		{Date: "2024-06-01", Content: "B"},
	}}

	tree := Render(section)

	require.Len(t, tree.Rows, 4)
	got := make([]string, 0, len(tree.Rows))
	for i, row := range tree.Rows {
		assert.Equal(t, i, row.Index)
		got = append(got, row.Content)
	}
	assert.Equal(t, []string{"A", "B", "C", "B"}, got)
}

func TestRender_EndToEnd(t *testing.T) {
	section := domain.Section{Items: []domain.Item{
		{Date: "2024-01-15", Content: "Published paper", Tag: "Paper"},
		{Date: "not-a-date", Content: "Misc update"},
	}}

	paper := ResolveStyle("Paper")
	want := Tree{
		Heading:  "News",
		Entrance: SectionEntrance(),
		Rows: []Row{
			{
				Key:       "news-0",
				Index:     0,
				DateLabel: "Jan 2024",
				Badge:     &Badge{Label: "Paper", Style: *paper},
				Content:   "Published paper",
				Entrance:  RowEntrance(0),
			},
			{
				Key:       "news-1",
				Index:     1,
				DateLabel: "not-a-date",
				Content:   "Misc update",
				Entrance:  RowEntrance(1),
			},
		},
	}

	got := Render(section)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_UnknownTagKeepsLabel(t *testing.T) {
	tree := Render(domain.Section{Items: []domain.Item{
		{Date: "2024-05-01", Content: "Invited", Tag: "Workshop"},
	}})

	require.Len(t, tree.Rows, 1)
	require.NotNil(t, tree.Rows[0].Badge)
	assert.Equal(t, "Workshop", tree.Rows[0].Badge.Label)
	assert.Equal(t, *ResolveStyle("News"), tree.Rows[0].Badge.Style)
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	items := []domain.Item{
		{Date: "2024-01-15", Content: "one", Tag: "Talk"},
		{Date: "bogus", Content: "two"},
	}
	snapshot := append([]domain.Item(nil), items...)

	_ = Render(domain.Section{Title: "T", Items: items})

	assert.Equal(t, snapshot, items)
}

func TestRender_RowKeys(t *testing.T) {
	tree := Render(domain.Section{Items: []domain.Item{
		{ID: "paper-2024", Date: "2024-01-15", Content: "one"},
		{Date: "2024-01-16", Content: "two"},
	}})

	assert.Equal(t, "paper-2024", tree.Rows[0].Key)
	assert.Equal(t, "news-1", tree.Rows[1].Key)
}

func TestRender_StaggeredEntrance(t *testing.T) {
	items := make([]domain.Item, 6)
	for i := range items {
		items[i] = domain.Item{Date: "2024-01-01", Content: "x"}
	}

	tree := Render(domain.Section{Items: items})

	assert.Equal(t, 600*time.Millisecond, tree.Entrance.Duration)
	assert.Equal(t, 500*time.Millisecond, tree.Entrance.Delay)
	assert.Equal(t, Motion{Opacity: 0, Y: 20}, tree.Entrance.Initial)
	assert.Equal(t, Motion{Opacity: 1}, tree.Entrance.Animate)

	for i, row := range tree.Rows {
		assert.Equal(t, time.Duration(i)*50*time.Millisecond, row.Entrance.Delay)
		assert.Equal(t, 300*time.Millisecond, row.Entrance.Duration)
		assert.Equal(t, Motion{Opacity: 0, X: -8}, row.Entrance.Initial)
		if i > 0 {
			assert.Greater(t, row.Entrance.Delay, tree.Rows[i-1].Entrance.Delay)
		}
	}
}

func TestTransition_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(RowEntrance(2))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"initial": {"opacity": 0, "x": -8, "y": 0},
		"animate": {"opacity": 1, "x": 0, "y": 0},
		"duration_ms": 300,
		"delay_ms": 100
	}`, string(data))
}
