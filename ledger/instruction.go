package ledger

// AccountMeta declares how an instruction wants one account supplied.
// Order within an instruction is part of each program's contract.
type AccountMeta struct {
	Key        Pubkey
	IsSigner   bool
	IsWritable bool
}

// Instruction is a single program call: the target program, the declared
// account list, and an opaque payload the program decodes itself.
type Instruction struct {
	ProgramID Pubkey
	Accounts  []AccountMeta
	Data      []byte
}

// Invoker lets a program call another program within the same atomic
// invocation. The callee observes the same live accounts as the caller,
// and may not hold more privilege over them than the caller was granted.
type Invoker interface {
	Invoke(in Instruction, accounts []AccountInfo) error
}
