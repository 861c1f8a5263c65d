package bytebuf

// guestModule is a WebAssembly module exporting one page of "memory" and
//
//	reverse(ptr i32, len i64)
//
// which reverses len bytes starting at ptr. Equivalent text format:
//
//	(module
//	  (memory (export "memory") 1)
//	  (func (export "reverse") (param $p i32) (param $n i64)
//	    (local $i i32) (local $j i32) (local $t i32)
//	    (if (i64.lt_u (local.get $n) (i64.const 2)) (then (return)))
//	    (local.set $i (local.get $p))
//	    (local.set $j (i32.sub (i32.add (local.get $p) (i32.wrap_i64 (local.get $n))) (i32.const 1)))
//	    (block (loop
//	      (br_if 1 (i32.ge_u (local.get $i) (local.get $j)))
//	      (local.set $t (i32.load8_u (local.get $i)))
//	      (i32.store8 (local.get $i) (i32.load8_u (local.get $j)))
//	      (i32.store8 (local.get $j) (local.get $t))
//	      (local.set $i (i32.add (local.get $i) (i32.const 1)))
//	      (local.set $j (i32.sub (local.get $j) (i32.const 1)))
//	      (br 0)))))
var guestModule = []byte{
	// magic, version
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00,
	// type: (i32, i64) -> ()
	0x01, 0x06, 0x01, 0x60, 0x02, 0x7f, 0x7e, 0x00,
	// function
	0x03, 0x02, 0x01, 0x00,
	// memory: min 1 page
	0x05, 0x03, 0x01, 0x00, 0x01,
	// export: "memory", "reverse"
	0x07, 0x14, 0x02,
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00,
	0x07, 0x72, 0x65, 0x76, 0x65, 0x72, 0x73, 0x65, 0x00, 0x00,
	// code
	0x0a, 0x53, 0x01, 0x51, 0x01, 0x03, 0x7f,
	0x20, 0x01, 0x42, 0x02, 0x54, 0x04, 0x40, 0x0f, 0x0b,
	0x20, 0x00, 0x21, 0x02,
	0x20, 0x00, 0x20, 0x01, 0xa7, 0x6a, 0x41, 0x01, 0x6b, 0x21, 0x03,
	0x02, 0x40, 0x03, 0x40,
	0x20, 0x02, 0x20, 0x03, 0x4f, 0x0d, 0x01,
	0x20, 0x02, 0x2d, 0x00, 0x00, 0x21, 0x04,
	0x20, 0x02, 0x20, 0x03, 0x2d, 0x00, 0x00, 0x3a, 0x00, 0x00,
	0x20, 0x03, 0x20, 0x04, 0x3a, 0x00, 0x00,
	0x20, 0x02, 0x41, 0x01, 0x6a, 0x21, 0x02,
	0x20, 0x03, 0x41, 0x01, 0x6b, 0x21, 0x03,
	0x0c, 0x00, 0x0b, 0x0b, 0x0b,
}
