// Package dptest runs parametrized tests under the standard testing package.
//
//	func TestSum(t *testing.T) {
//		dptest.Run(t, func(a, b, sum int) error {
//			if a+b != sum {
//				return fmt.Errorf("%d + %d != %d", a, b, sum)
//			}
//			return nil
//		}, []string{"1|2|3", "2|2|4"})
//	}
//
// Every row becomes a subtest named after the case. A function whose first
// parameter is *testing.T or testing.TB receives the subtest's T there.
package dptest
