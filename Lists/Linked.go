package Lists

// Node in a Linked list. Value is free to mutate; the links belong to the
// containing list.
type Node[T any] struct {
	Value      T
	prev, next *Node[T]
}

func (u *Node[T]) Next() *Node[T] {
	return u.next
}

func (u *Node[T]) Prev() *Node[T] {
	return u.prev
}

// Linked is a doubly linked list. The zero value is an empty list.
type Linked[T any] struct {
	front, back *Node[T]
	sz          uint
}

func New[T any]() *Linked[T] {
	return &Linked[T]{}
}

func (u *Linked[T]) Front() *Node[T] {
	return u.front
}

func (u *Linked[T]) Back() *Node[T] {
	return u.back
}

func (u *Linked[T]) Size() uint {
	return u.sz
}

func (u *Linked[T]) Empty() bool {
	return u.sz == 0
}

// PushFront wraps v in a new node linked at the front and returns the node.
func (u *Linked[T]) PushFront(v T) *Node[T] {
	n := &Node[T]{Value: v}
	u.AttachFront(n)
	return n
}

// PushBack wraps v in a new node linked at the back and returns the node.
func (u *Linked[T]) PushBack(v T) *Node[T] {
	n := &Node[T]{Value: v}
	u.AttachBack(n)
	return n
}

// AttachFront links an existing node at the front. n must not currently belong
// to any list.
func (u *Linked[T]) AttachFront(n *Node[T]) {
	n.prev, n.next = nil, u.front
	if u.front == nil {
		u.back = n
	} else {
		u.front.prev = n
	}
	u.front = n
	u.sz++
}

// AttachBack links an existing node at the back. n must not currently belong
// to any list.
func (u *Linked[T]) AttachBack(n *Node[T]) {
	n.prev, n.next = u.back, nil
	if u.back == nil {
		u.front = n
	} else {
		u.back.next = n
	}
	u.back = n
	u.sz++
}

// Detach unlinks n from the list. n keeps its value and may be attached to
// another list afterwards. n must currently belong to this list.
func (u *Linked[T]) Detach(n *Node[T]) {
	if n.prev == nil {
		u.front = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		u.back = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	u.sz--
}

// PopFront detaches the front node and returns its value.
func (u *Linked[T]) PopFront() (T, error) {
	if u.front == nil {
		return *new(T), &EmptyListError{}
	}
	n := u.front
	u.Detach(n)
	return n.Value, nil
}

// PopBack detaches the back node and returns its value.
func (u *Linked[T]) PopBack() (T, error) {
	if u.back == nil {
		return *new(T), &EmptyListError{}
	}
	n := u.back
	u.Detach(n)
	return n.Value, nil
}

// Splice moves every node of other onto the back of u, preserving order and
// node identity, and leaves other empty.
func (u *Linked[T]) Splice(other *Linked[T]) {
	if other.front == nil {
		return
	}
	if u.back == nil {
		u.front = other.front
	} else {
		u.back.next, other.front.prev = other.front, u.back
	}
	u.back = other.back
	u.sz += other.sz
	other.front, other.back, other.sz = nil, nil, 0
}

// Clear drops every node.
func (u *Linked[T]) Clear() {
	u.front, u.back, u.sz = nil, nil, 0
}

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "List is Empty: cannot Pop."
}
