package asserts

// Assert panics with err when cond is false.
//
// 用于检查调用方必须保证的前置条件, 违反时立即失败, 不作为错误值返回
func Assert(cond bool, err error) {
	if !cond {
		panic(err)
	}
}
