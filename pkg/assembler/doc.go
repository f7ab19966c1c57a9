/*
Package assembler hands a finished scene tree to a simulation engine.

Assemble walks the tree depth-first in attachment order. For every node it
creates the node, passes the node's own parameters to engines that accept
them, creates the node's objects in attachment order, recurses into the
children in attachment order and finally seals the node. Objects are
therefore always created before any sibling subtree that might reference
them by path.

The Recorder engine keeps the operations it receives, which is how plans
are exported and how identical trees are checked to produce byte-identical
output.
*/
package assembler
