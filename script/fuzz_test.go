package script

import "testing"

func FuzzToUnicode(f *testing.F) {
	f.Add("gurU")
	f.Add("<> > <")
	f.Add("ik®`sM")
	f.Add("guxˆØI")
	f.Add("BuiKAw.")
	f.Add("ਗੁਰੂ")
	f.Add("kwrmu`l-k`rwm")
	f.Add("")
	f.Add("   ")
	f.Add("\xff\xfe")
	f.Add("\x00")

	f.Fuzz(func(t *testing.T, s string) {
		result := ToUnicode(s)

		// Idempotency: re-converting converted text must be a no-op.
		if second := ToUnicode(result); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, result, second)
		}
	})
}

func FuzzNormalize(f *testing.F) {
	f.Add("ਗੁਰੂ")
	f.Add("ਗਿਾ੍ਹਨ")
	f.Add("ਅਾਂ")
	f.Add("ਸ਼੍ਰੇਣੀ")
	f.Add("hello")
	f.Add("")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		result := Normalize(s)

		if second := Normalize(result); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, result, second)
		}
	})
}

func FuzzToASCII(f *testing.F) {
	f.Add("ਗੁਰੂ")
	f.Add("ਕ੍ਰਿੱਸੰ")
	f.Add("ਥਾਨੵਿੰ")
	f.Add("ਨੂੰ")
	f.Add("ਯਕੀਂ")
	f.Add("ਮਧ੍ਯ")
	f.Add("hello? 123")
	f.Add("")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		result := ToASCII(s)

		// Converting twice is the same as once: the first pass leaves
		// no Gurmukhi behind.
		if second := ToASCII(result); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, result, second)
		}
	})
}
