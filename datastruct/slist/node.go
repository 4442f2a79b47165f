package slist

// node 是链表中的一个节点, 由它唯一的前驱(哨兵或另一个节点)持有
type node[T any] struct {
	value T
	next  *node[T]
}

// release 断开节点与后继的链接并清空值, 节点被移出链表后调用, 每个节点只调用一次
func (n *node[T]) release() {
	var zero T
	n.value = zero
	n.next = nil
}
