package shared

// Entity 实体接口
// 实体与值对象的区别：
//  1. 实体有唯一标识
//  2. 通过标识判断相等性（即使属性相同，标识不同就是不同的实体）
//
// 目录条目以 ISBN 作为标识，订单以序列号作为标识，
// 因此标识类型由具体实体决定
type Entity[K comparable] interface {
	Identity() K
}
