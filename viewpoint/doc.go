// Package viewpoint 定义视点树模型：文件夹与视点组成的有序树，以及导入来源池。
//
// 树只有一个根文件夹，根不会被删除、移动或改名。所有修改都通过 Model 完成，
// 以保证父子指针一致、guid 在树内唯一、不出现环。
package viewpoint
