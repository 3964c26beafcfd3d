package encoding_test

import (
	"bytes"
	"testing"

	enc "github.com/named-data/ndnx/std/encoding"
	tu "github.com/named-data/ndnx/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestNameFromStr(t *testing.T) {
	tu.SetT(t)

	for s, want := range map[string]string{
		"/":                     "/",
		"":                      "/",
		"ccnx:/":                "/",
		"/a/b":                  "/a/b",
		"ccnx:/a/b/":            "/a/b",
		"CCNX:/a//b":            "/a/b",
		"ndn:/a/./b":            "/a/b",
		"/a/b/../c":             "/a/c",
		"/../a":                 "/a",
		"ccnx://authority/a/b":  "/a/b",
		"/a/b?key=value#frag":   "/a/b",
		"/a%20b/...":            "/a%20b/...",
		"/parc.com/%00%01/....": "/parc.com/%00%01/....",
		"/a:b/c@d":              "/a%3Ab/c%40d",
	} {
		require.Equal(t, want, tu.NoErr(enc.NameFromStr(s)).String(), s)
	}

	tu.Err(enc.NameFromStr("/a b"))
	tu.Err(enc.NameFromStr("/a/%zz"))
}

func TestNameURI(t *testing.T) {
	tu.SetT(t)

	n := tu.NoErr(enc.NameFromStr("/a/b"))
	require.Equal(t, "ccnx:/a/b", n.URI())
	require.Equal(t, "ccnx:/", enc.Name{}.URI())
	require.True(t, n.Equal(tu.NoErr(enc.NameFromStr(n.URI()))))
}

func TestNameOps(t *testing.T) {
	tu.SetT(t)

	n := tu.NoErr(enc.NameFromStr("/a/b/c"))
	require.Equal(t, "c", n.At(-1).String())
	require.Equal(t, "a", n.At(0).String())
	require.Equal(t, enc.Component{}, n.At(3))
	require.Equal(t, "/a/b", n.Prefix(-1).String())
	require.Equal(t, "/a", n.Prefix(1).String())
	require.Equal(t, "/", n.Prefix(0).String())
	require.Equal(t, "/a/b/c", n.Prefix(10).String())

	m := n.Prefix(1).Append(enc.NewStringComponent("x"))
	require.Equal(t, "/a/x", m.String())
	require.Equal(t, "/a/b/c", n.String())

	require.True(t, n.Prefix(2).IsPrefix(n))
	require.True(t, n.IsPrefix(n))
	require.False(t, n.IsPrefix(n.Prefix(2)))
	require.False(t, m.IsPrefix(n))

	require.Equal(t, -1, n.Prefix(2).Compare(n))
	require.Equal(t, 1, n.Compare(n.Prefix(2)))
	require.Equal(t, -1, n.Compare(m))
	require.Equal(t, 0, n.Compare(n.Clone()))

	require.Equal(t, "/a/b/c/d", n.Prefix(1).Append(n.Prefix(3)[1:]...).Append(enc.NewStringComponent("d")).String())
}

func TestNameEncoding(t *testing.T) {
	tu.SetT(t)

	n := tu.NoErr(enc.NameFromStr("/ABC/..."))
	require.Equal(t, tu.Hex("f2 fa 9d 414243 00 fa 00 00"), n.Bytes())
	require.Equal(t, tu.Hex("fa 9d 414243 00 fa 00"), n.BytesInner())

	require.True(t, n.Equal(tu.NoErr(enc.NameFromBytes(n.Bytes()))))
	require.True(t, n.Equal(tu.NoErr(enc.NameFromBytesInner(n.BytesInner()))))
	require.Len(t, tu.NoErr(enc.NameFromBytesInner(nil)), 0)

	e := enc.NewEncoder(0)
	e.WriteName(n)
	require.Equal(t, n.Bytes(), tu.NoErr(e.Bytes()))
}

func TestNamePrefixKeys(t *testing.T) {
	tu.SetT(t)

	n := tu.NoErr(enc.NameFromStr("/a/b/c"))
	for i := 0; i <= len(n); i++ {
		require.True(t, bytes.HasPrefix(n.BytesInner(), n.Prefix(i).BytesInner()))
	}
	// "/a/b" is not a key prefix of "/a/bc"
	bc := tu.NoErr(enc.NameFromStr("/a/bc"))
	require.False(t, bytes.HasPrefix(bc.BytesInner(), n.Prefix(2).BytesInner()))
}

func TestNameHash(t *testing.T) {
	tu.SetT(t)

	n := tu.NoErr(enc.NameFromStr("/a/b/c"))
	ph := n.PrefixHash()
	require.Len(t, ph, 4)
	for i := range ph {
		require.Equal(t, n.Prefix(i).Hash(), ph[i])
	}
	require.Equal(t, enc.Name{}.Hash(), ph[0])
	require.NotEqual(t, n.Hash(), tu.NoErr(enc.NameFromStr("/a/b/d")).Hash())
}

func TestNameCloneIsDeep(t *testing.T) {
	tu.SetT(t)

	buf := []byte("abc")
	n := enc.Name{{Val: buf}, {Val: []byte("d")}}
	cl := n.Clone()
	buf[0] = 'x'
	require.Equal(t, "/abc/d", cl.String())
	// components of a clone must not overwrite each other on append
	cl[0].Val = append(cl[0].Val, 'z')
	require.Equal(t, "/abcz/d", cl.String())
}
