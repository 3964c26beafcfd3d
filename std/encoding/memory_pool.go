package encoding

import (
	"bytes"
	"hash"
	"sync"

	"github.com/cespare/xxhash"
)

// Hashing names is on the lookup path of every store and table, so the
// hasher and its scratch buffer are pooled.
type hashPoolObj struct {
	hash   hash.Hash64
	buffer bytes.Buffer
}

var xxHashPool = sync.Pool{
	New: func() any {
		return &hashPoolObj{hash: xxhash.New()}
	},
}

func xxHashPoolGet() *hashPoolObj {
	obj := xxHashPool.Get().(*hashPoolObj)
	obj.hash.Reset()
	obj.buffer.Reset()
	return obj
}

func xxHashPoolPut(obj *hashPoolObj) {
	xxHashPool.Put(obj)
}

// sum hashes the bytes currently in the scratch buffer.
func (obj *hashPoolObj) sum() uint64 {
	obj.hash.Write(obj.buffer.Bytes())
	return obj.hash.Sum64()
}

// writeComponent appends the ccnb encoding of c to the scratch buffer.
func (obj *hashPoolObj) writeComponent(c Component) {
	var hdr [10]byte
	obj.buffer.Write(hdr[:EncodeTypeAndValue(hdr[:], DTagType, uint64(ComponentDTag))])
	if len(c.Val) > 0 {
		obj.buffer.Write(hdr[:EncodeTypeAndValue(hdr[:], BlobType, uint64(len(c.Val)))])
		obj.buffer.Write(c.Val)
	}
	obj.buffer.WriteByte(CloseByte)
}
