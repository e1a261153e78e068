package game

// Evaluator maps (secret, guess) to one Accuracy per position. Both words
// have the same length.
type Evaluator func(secret, guess string) []Accuracy

// Evaluate is the membership-test scorer: a letter is Absent if it does not
// occur anywhere in secret, Correct if it matches secret at the same index,
// and Exists otherwise. Repeated letters are not counted, so every copy of a
// letter present in secret is marked Exists or Correct.
func Evaluate(secret, guess string) []Accuracy {
	var inSecret [26]bool
	for i := 0; i < len(secret); i++ {
		inSecret[idx(secret[i])] = true
	}
	res := make([]Accuracy, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case !inSecret[idx(guess[i])]:
			res[i] = Absent
		case guess[i] == secret[i]:
			res[i] = Correct
		default:
			res[i] = Exists
		}
	}
	return res
}

// EvaluateCounted implements the standard two-pass scoring.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non-correct) secret letters.
//
// Pass 2:
//   - For each remaining guess letter: if there is a remaining count for that
//     letter, mark Exists and decrement the count; otherwise mark Absent.
func EvaluateCounted(secret, guess string) []Accuracy {
	n := len(guess)
	res := make([]Accuracy, n)
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = Correct
		} else {
			counts[idx(secret[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == Correct {
			continue
		}
		if j := idx(guess[i]); counts[j] > 0 {
			res[i] = Exists
			counts[j]--
		} else {
			res[i] = Absent
		}
	}
	return res
}

// EvaluatorFor returns the evaluator registered under name ("naive" or
// "wordle") and whether the name was known.
func EvaluatorFor(name string) (Evaluator, bool) {
	switch name {
	case "", "naive":
		return Evaluate, true
	case "wordle":
		return EvaluateCounted, true
	}
	return nil, false
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(b byte) int { return int(b - 'a') }
