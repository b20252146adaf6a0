// Package overlay рассчитывает кликабельные области поверх растровых подложек
// (карта комплекса, фасад корпуса, план этажа).
//
// Области задаются полигонами в пиксельных координатах исходного изображения.
// Для отображения они масштабируются под фактический размер картинки на экране:
//
//	x' = x*scaleX + offsetX
//	y' = y*scaleY + offsetY
//
// где scaleX = renderedWidth/originalWidth, scaleY = renderedHeight/originalHeight.
// Пока исходный размер неизвестен или коэффициенты не положительны, области
// не рисуются и не принимают события указателя.
//
// Подпись области ставится в вершинный центроид (среднее арифметическое вершин),
// а не в центр масс площади. Для сильно невыпуклых контуров подпись смещается
// визуально; клиенты уже завязаны на это расположение.
package overlay
