// Command selfobject builds a few example object graphs and evaluates them,
// printing diagnostic snapshots along the way. It exercises the library the
// way an embedding host would; the engine itself lives in the root package.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/wualvin2021/SelfObject"
)

func main() {
	log.SetFlags(0)
	increment()
	siblings()
	chain()
}

// increment boxes 5 and sends it an inherited increment message with itself
// as the parameter.
func increment() {
	inc := selfobject.NewNative(selfobject.NativeFunc(
		func(self, param *selfobject.Object) (*selfobject.Object, error) {
			if param == nil {
				return nil, fmt.Errorf("increment: no parameter bound")
			}
			n, ok := param.Value.(float64)
			if !ok {
				return nil, fmt.Errorf("increment: parameter is not a number")
			}
			return selfobject.NewNumber(n + 1), nil
		}))
	n := selfobject.NewNumber(5)
	n.SetSlot("increment", inc)

	fmt.Println("receiver:", n.Describe())
	r, err := n.DispatchWith("increment", n)
	if err != nil {
		log.Fatalln("increment:", err)
	}
	fmt.Println("5 increment =", r.Value)
	out, err := r.DescribeYAML()
	if err != nil {
		log.Fatalln("snapshot:", err)
	}
	fmt.Print(out)
}

// siblings shows the breadth-first tie-break: two parents answer the same
// message, and the one marked first wins.
func siblings() {
	b := selfobject.New()
	b.SetSlot("x", selfobject.NewNumber(1))
	c := selfobject.New()
	c.SetSlot("x", selfobject.NewNumber(2))
	a := selfobject.New()
	a.SetParentSlot("b", b)
	a.SetParentSlot("c", c)

	fmt.Println("receiver:", a.Describe())
	r, err := a.Dispatch("x")
	if err != nil {
		log.Fatalln("siblings:", err)
	}
	fmt.Println("a x =", r.Value, "(from the first-marked parent)")
}

// chain runs a two-message chain and shows the failure mode: the second
// message goes to the result of the first, which does not answer it.
func chain() {
	o := selfobject.NewChain("a", "b")
	o.SetSlot("a", selfobject.New())
	o.SetSlot("b", selfobject.NewNumber(1))

	fmt.Println("receiver:", o.Describe())
	_, err := o.Evaluate()
	var mnf *selfobject.MessageNotFoundError
	if errors.As(err, &mnf) {
		fmt.Println("chain failed as the rules dictate:", mnf)
		return
	}
	log.Fatalln("chain: expected a message-not-found failure, got", err)
}
