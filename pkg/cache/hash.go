package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/matzehuels/texttree/pkg/tree"
)

// hashKey builds "prefix:sha256(json(parts))".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes the hex SHA-256 of data.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashTree returns a content hash of a tree's shape and labels.
// Trees that render identically under every formatting hash equally.
func HashTree[T fmt.Stringer](root *tree.Node[T]) string {
	h := sha256.New()
	if root == nil {
		return hex.EncodeToString(h.Sum(nil))
	}
	var buf []byte
	root.Walk(func(n *tree.Node[T], depth int) bool {
		buf = strconv.AppendInt(buf[:0], int64(depth), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendQuote(buf, n.Label())
		buf = append(buf, '\n')
		h.Write(buf)
		return true
	})
	return hex.EncodeToString(h.Sum(nil))
}
