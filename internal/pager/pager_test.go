package pager

import (
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagerd/internal/binding"
	"pagerd/internal/controls"
	"pagerd/internal/paging"
	"pagerd/pkg/types"
)

func intPtr(n int) *int { return &n }

func boolPtr(b bool) *bool { return &b }

func bindUsers(t *testing.T, p *Pager, length int) {
	t.Helper()
	_, err := p.Bind(types.BindRequest{Expression: "user in users | itemsPerPage: 10 : 'users'"})
	require.NoError(t, err)
	require.NoError(t, p.SetCollectionLength("users", length))
	// the first slice records the page size
	_, err = p.Slice("users", []byte(`[]`), nil)
	require.NoError(t, err)
}

func TestNewWithConfigDefaults(t *testing.T) {
	p := NewWithConfig(Config{})
	assert.Equal(t, paging.DefaultID, p.DefaultID())
	assert.True(t, p.Ready())
	require.NoError(t, p.Close())
	assert.False(t, p.Ready())

	p = NewWithConfig(Config{DefaultID: "main"})
	inst, err := p.Bind(types.BindRequest{Expression: "x in xs | itemsPerPage: 5"})
	require.NoError(t, err)
	assert.Equal(t, "main", inst.ID)
	assert.Equal(t, "x in xs | itemsPerPage: 5", inst.Expression, "default id stays implicit")
	assert.Equal(t, "_main__currentPage", inst.PageStorage)
}

func TestBindErrors(t *testing.T) {
	p := New()
	_, err := p.Bind(types.BindRequest{Expression: "user in users"})
	require.Error(t, err)
	assert.True(t, IsBadRequest(err))
	assert.True(t, binding.IsMissingFilterConfiguration(err))
	assert.Empty(t, p.Instances())

	_, err = p.Bind(types.BindRequest{Expression: "x in xs | itemsPerPage: 5", SharePageWith: "nope"})
	require.Error(t, err)
	assert.True(t, IsBadRequest(err))
}

func TestSliceAndNavigate(t *testing.T) {
	p := New()
	bindUsers(t, p, 95)

	items := []byte(`[0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25,26,27,28,29]`)
	res, err := p.Slice("users", items, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 10, res.ItemsPerPage)
	require.Len(t, res.Items, 10)

	page, err := p.SetPage("users", "3")
	require.NoError(t, err)
	assert.Equal(t, types.PageResponse{Accepted: true, Current: 3, Last: 10}, page)

	res, err = p.Slice("users", items, "10")
	require.NoError(t, err)
	assert.Equal(t, []any{json.Number("20"), json.Number("21"), json.Number("22"), json.Number("23"), json.Number("24"),
		json.Number("25"), json.Number("26"), json.Number("27"), json.Number("28"), json.Number("29")}, res.Items)

	inst, err := p.Instance("users")
	require.NoError(t, err)
	assert.Equal(t, 3, inst.CurrentPage)
	assert.Equal(t, 10, inst.TotalPages)
}

func TestSetPageIgnoresInvalidLabels(t *testing.T) {
	p := New()
	bindUsers(t, p, 95)
	before := testutil.ToFloat64(navigationRejectedTotal)

	for _, label := range []string{"0", "11", "...", "x"} {
		res, err := p.SetPage("users", label)
		require.NoError(t, err)
		assert.False(t, res.Accepted, label)
		assert.Equal(t, 1, res.Current)
	}
	assert.Equal(t, before+4, testutil.ToFloat64(navigationRejectedTotal))
}

func TestUnknownInstance(t *testing.T) {
	p := New()
	_, err := p.SetPage("ghost", "1")
	assert.True(t, IsNotRegistered(err))
	_, err = p.Slice("ghost", []byte(`[1]`), 1)
	assert.True(t, IsNotRegistered(err))
	_, err = p.Controls("ghost", 0)
	assert.True(t, IsNotRegistered(err))
	assert.True(t, IsNotRegistered(p.SetCollectionLength("ghost", 3)))
	assert.True(t, IsNotRegistered(p.Unbind("ghost")))
}

func TestSliceRejectsMalformedItems(t *testing.T) {
	p := New()
	bindUsers(t, p, 5)
	_, err := p.Slice("users", []byte(`[1,2`), nil)
	assert.True(t, IsBadRequest(err))
}

func TestSliceNonCollectionPassesThrough(t *testing.T) {
	p := New()
	bindUsers(t, p, 5)

	res, err := p.Slice("users", []byte(`null`), nil)
	require.NoError(t, err)
	assert.Nil(t, res.Items)

	res, err = p.Slice("users", nil, nil)
	require.NoError(t, err)
	assert.Nil(t, res.Items)

	res, err = p.Slice("users", []byte(`"scalar"`), nil)
	require.NoError(t, err)
	assert.Equal(t, "scalar", res.Items)
}

func TestSliceObjectKeepsKeyOrder(t *testing.T) {
	p := New()
	_, err := p.Bind(types.BindRequest{Expression: "(k, v) in obj | itemsPerPage: 2"})
	require.NoError(t, err)
	require.NoError(t, p.SetCollectionLength("", 3))

	res, err := p.Slice("", []byte(`{"z":1,"a":2,"m":3}`), nil)
	require.NoError(t, err)
	o, ok := res.Items.(*paging.Ordered[string, any])
	require.True(t, ok, "got %T", res.Items)
	assert.Equal(t, []string{"z", "a"}, o.Keys())
}

func TestAsyncModePassesPageThrough(t *testing.T) {
	p := New()
	_, err := p.Bind(types.BindRequest{ID: "remote", Expression: "r in rows | itemsPerPage: 2", TotalItems: intPtr(40)})
	require.NoError(t, err)
	rows := []byte(`["a","b","c"]`)
	res, err := p.Slice("remote", rows, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, res.Items)

	page, err := p.SetPage("remote", "7")
	require.NoError(t, err)
	require.True(t, page.Accepted)
	assert.Equal(t, 20, page.Last)

	res, err = p.Slice("remote", rows, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, res.Items, "async slices always start at offset 0")
	assert.Equal(t, 7, res.Page)

	inst, err := p.Instance("remote")
	require.NoError(t, err)
	assert.True(t, inst.AsyncMode)
	assert.Equal(t, 40, inst.CollectionLength)

	require.NoError(t, p.SetTotalItems("remote", 4))
	view, err := p.Controls("remote", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Current, "page clamped to the new last page")
}

func TestControlsViewFollowsMutations(t *testing.T) {
	p := NewWithConfig(Config{Controls: controls.Options{BoundaryLinks: true}})
	bindUsers(t, p, 200)
	_, err := p.SetPage("users", "10")
	require.NoError(t, err)

	view, err := p.Controls("users", 0)
	require.NoError(t, err)
	labels := make([]string, len(view.Pages))
	for i, l := range view.Pages {
		labels[i] = l.Label
	}
	assert.Equal(t, []string{"1", "...", "8", "9", "10", "11", "12", "...", "20"}, labels)
	require.NotNil(t, view.First)
	assert.Equal(t, types.Range{Lower: 91, Upper: 100, Total: 200}, view.Range)

	require.NoError(t, p.SetCollectionLength("users", 25))
	view, err = p.Controls("users", 5)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Current)
	assert.Equal(t, 3, view.Last)
}

func TestControlsOptionsOverride(t *testing.T) {
	p := NewWithConfig(Config{Template: controls.TemplateConfig{Path: "base.tpl"}})
	_, err := p.Bind(types.BindRequest{
		ID:         "small",
		Expression: "x in xs | itemsPerPage: 10",
		Controls: &types.ControlsOptions{
			AutoHide:       boolPtr(false),
			DirectionLinks: boolPtr(false),
			TemplateURL:    "small.tpl",
		},
	})
	require.NoError(t, err)
	require.NoError(t, p.SetCollectionLength("small", 3))

	view, err := p.Controls("small", 0)
	require.NoError(t, err)
	assert.True(t, view.Visible)
	assert.Nil(t, view.Previous)
	assert.Equal(t, "small.tpl", view.Template.Path)
}

func TestSharedPageStorage(t *testing.T) {
	p := New()
	bindUsers(t, p, 95)
	_, err := p.Bind(types.BindRequest{ID: "mirror", Expression: "u in users | itemsPerPage: 10", SharePageWith: "users"})
	require.NoError(t, err)
	require.NoError(t, p.SetCollectionLength("mirror", 95))

	_, err = p.SetPage("users", "4")
	require.NoError(t, err)
	inst, err := p.Instance("mirror")
	require.NoError(t, err)
	assert.Equal(t, 4, inst.CurrentPage)
	assert.Equal(t, "_users__currentPage", inst.PageStorage)
}

func TestUnbind(t *testing.T) {
	p := New()
	bindUsers(t, p, 10)
	assert.Equal(t, float64(1), testutil.ToFloat64(instancesRegistered))
	require.NoError(t, p.Unbind("users"))
	assert.Empty(t, p.Instances())
	assert.Equal(t, float64(0), testutil.ToFloat64(instancesRegistered))
}

func TestPagesIsStateless(t *testing.T) {
	res := Pages(5, 95, 10, 9)
	assert.Equal(t, []any{1, 2, 3, 4, 5, 6, 7, "...", 10}, res.Pages)
	assert.Equal(t, 10, res.TotalPages)
	assert.Equal(t, types.Range{Lower: 41, Upper: 50, Total: 95}, res.Range)

	res = Pages(0, 0, 0, 0)
	assert.Empty(t, res.Pages)
	assert.Zero(t, res.TotalPages)
}

func TestPagesClampsCurrentToLastPage(t *testing.T) {
	res := Pages(1<<62, 5, 10, 9)
	assert.Equal(t, []any{1}, res.Pages)
	assert.Equal(t, types.Range{Lower: 1, Upper: 5, Total: 5}, res.Range)

	res = Pages(50, 95, 10, 9)
	assert.Equal(t, []any{1, "...", 4, 5, 6, 7, 8, 9, 10}, res.Pages)
	assert.Equal(t, types.Range{Lower: 91, Upper: 95, Total: 95}, res.Range)
}
