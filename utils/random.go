package utils

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// NodeIDEnv separates the id space of processes writing to one index.
const NodeIDEnv = "SQLJIEBA_NODE_ID"

var idGenerator = newIDGenerator(os.Getenv(NodeIDEnv))

func newIDGenerator(nodeID string) *snowflake.Node {
	node, err := strconv.ParseInt(nodeID, 10, 64)
	if err != nil || node < 0 || node > 1023 {
		node = 1
	}
	gen, err := snowflake.NewNode(node)
	if err != nil {
		panic(err)
	}
	return gen
}

// GenerateNewID returns a snowflake id for documents indexed without one.
func GenerateNewID() int64 {
	return idGenerator.Generate().Int64()
}
