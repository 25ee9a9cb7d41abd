package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID issues ids for ledger entries and badge awards.
func GenID() int64 {
	return node.Generate().Int64()
}
