package comparator

// chainState is the value threaded between adjacent subtractor cells:
// the borrow carried out of the less-significant positions plus a flag
// tracking whether every position so far compared equal. The equality
// flag is what lets the chain distinguish "still equal" from "order
// already decided", so strict Less and Greater both resolve to false
// on identical operands.
type chainState struct {
	borrow bool
	equal  bool
}

// chainIdentity is the state fed into the least-significant cell:
// no borrow, provisionally equal.
var chainIdentity = chainState{borrow: false, equal: true}

// subtractBit evaluates one 1-bit subtractor/compare cell for a - b with
// the incoming state. Standard full-subtractor borrow logic:
//
//	borrow' = (!a && b) || ((!a || b) && borrow)
//
// The equality flag survives only while every position matches.
// Pure and stateless per call.
func subtractBit(a, b bool, in chainState) chainState {
	return chainState{
		borrow: (!a && b) || ((!a || b) && in.borrow),
		equal:  in.equal && a == b,
	}
}
