package kdtree

import "testing"

func TestCompressNil(t *testing.T) {
	nodes, triIdx := compress(nil)
	if nodes != nil || triIdx != nil {
		t.Fatal("expected compressing a nil tree to return nil slices")
	}
}

func TestCompressSingleLeaf(t *testing.T) {
	root := &uncompressedNode{leaf: true, triangles: []uint32{4, 5, 6}}
	nodes, triIdx := compress(root)
	if len(nodes) != 1 || !nodes[0].IsLeaf() {
		t.Fatalf("expected a single leaf node; got %d nodes", len(nodes))
	}
	if nodes[0].TriangleCount() != 3 {
		t.Fatalf("expected 3 triangles in the leaf; got %d", nodes[0].TriangleCount())
	}
	if len(triIdx) != 3 || triIdx[0] != 4 || triIdx[1] != 5 || triIdx[2] != 6 {
		t.Fatalf("expected the leaf's triangle indices to be preserved in order; got %v", triIdx)
	}
}

func TestCompressInternalLeftChildIsNextSlot(t *testing.T) {
	left := &uncompressedNode{leaf: true, triangles: []uint32{0}}
	right := &uncompressedNode{leaf: true, triangles: []uint32{1, 2}}
	root := &uncompressedNode{axis: 1, split: 0.5, left: left, right: right}

	nodes, triIdx := compress(root)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes (root + 2 leaves); got %d", len(nodes))
	}
	if nodes[0].IsLeaf() {
		t.Fatal("expected node 0 to be the internal root")
	}
	if nodes[0].SplitAxis() != 1 || nodes[0].SplitPlane() != 0.5 {
		t.Fatalf("expected split axis 1 at 0.5; got axis=%d plane=%v", nodes[0].SplitAxis(), nodes[0].SplitPlane())
	}
	if !nodes[1].IsLeaf() || nodes[1].TriangleCount() != 1 {
		t.Fatal("expected node 1 (the implicit left child) to be the left leaf")
	}
	if nodes[0].RightChild() != 2 {
		t.Fatalf("expected the root's right child to point at node 2; got %d", nodes[0].RightChild())
	}
	if !nodes[2].IsLeaf() || nodes[2].TriangleCount() != 2 {
		t.Fatal("expected node 2 to be the right leaf")
	}
	if len(triIdx) != 3 {
		t.Fatalf("expected 3 total triangle-index entries; got %d", len(triIdx))
	}
}
